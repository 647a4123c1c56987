package controllers

import (
	"fudge-kettle/config"
	"fudge-kettle/models"
	"fudge-kettle/utils"

	"github.com/gin-gonic/gin"
)

// AuthController issues admin tokens. There are no customer accounts; the
// storefront itself is anonymous and session-based.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// @Summary Admin login
// @Description Exchange the admin credentials for a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  utils.FieldErrors(err),
		})
		return
	}

	cfg := config.AppConfig
	if cfg.AdminPassHash == "" || req.Email != cfg.AdminEmail {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	ok, err := utils.VerifyPassword(cfg.AdminPassHash, req.Password)
	if err != nil || !ok {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(req.Email)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    gin.H{"token": token},
	})
}
