package services

import (
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	user := models.User{ID: "user-1", Name: "John Doe", Role: models.RoleUser}
	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	session, err := svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "John Doe", session.UserName)
	assert.Equal(t, models.RoleUser, session.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").GenerateToken(models.User{ID: "u", Name: "U", Role: models.RoleAdmin})
	assert.NoError(t, err)

	_, err = NewTokenService("secret-b").ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := NewTokenService("secret").ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestGuestTokenRoundTripsButCannotPurchase(t *testing.T) {
	svc := NewTokenService("secret")

	token, err := svc.GenerateToken(models.User{ID: "guest-1", Name: "Guest", Role: models.RoleGuest})
	assert.NoError(t, err)

	session, err := svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleGuest, session.Role)
	assert.False(t, session.Role.CanPurchase())
}
