package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "fk_session"

// SessionMiddleware assigns each visitor an opaque session token carried in
// a cookie. The token keys the server-side cart; nothing else is stored in
// the cookie itself.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sessionID, 7*24*3600, "/", "", false, true)
		}
		c.Set("session_id", sessionID)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
