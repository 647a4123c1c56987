package utils

import (
	"testing"

	"fudge-kettle/config"
	"fudge-kettle/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "13.00", FormatPrice(1300))
	assert.Equal(t, "5.00", FormatPrice(500))
	assert.Equal(t, "0.05", FormatPrice(5))
	assert.Equal(t, "0.00", FormatPrice(0))
	assert.Equal(t, "-1.50", FormatPrice(-150))
}

func TestFieldErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(models.CheckoutRequest{
		FirstName:      "Ada",
		Email:          "not-an-email",
		PickupDatetime: "2026-09-01T10:30",
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "this field is required", fields["lastname"])
	assert.Equal(t, "this field is required", fields["address"])
	assert.NotContains(t, fields, "firstname")
}

func TestFieldErrorsMalformedBody(t *testing.T) {
	fields := FieldErrors(assert.AnError)
	assert.Contains(t, fields, "_body")
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("kettle-corn")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	ok, err := VerifyPassword(hash, "kettle-corn")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = VerifyPassword(hash, "wrong")
	assert.False(t, ok)
}

func TestAdminTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	token, err := GenerateAdminToken("admin@fudgekettle.com")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@fudgekettle.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	_, err = ValidateToken(token + "tampered")
	assert.Error(t, err)
}
