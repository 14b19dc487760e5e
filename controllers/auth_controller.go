package controllers

import (
	"net/http"

	"storefront/middleware"
	"storefront/models"
	"storefront/repository"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthController implements the role-selection login flow: the client picks
// a role and gets the first directory user carrying it.
type AuthController struct {
	users  repository.UserDirectory
	tokens *services.TokenService
	carts  repository.CartStore
}

func NewAuthController(users repository.UserDirectory, tokens *services.TokenService, carts repository.CartStore) *AuthController {
	return &AuthController{users: users, tokens: tokens, carts: carts}
}

type loginRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if !req.Role.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	user, err := ac.users.FindByRole(req.Role)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no user with that role"})
		return
	}

	if err := ac.users.TouchLastActive(user.ID); err == nil {
		user, _ = ac.users.Get(user.ID)
	}

	token, err := ac.tokens.GenerateToken(user)
	if err != nil {
		zap.L().Error("Failed to sign session token", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout discards the session cart. Carts are session-scoped and never
// survive a logout.
func (ac *AuthController) Logout(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing session"})
		return
	}

	if err := ac.carts.DeleteCart(c.Request.Context(), session.UserID); err != nil {
		zap.L().Warn("Failed to discard cart on logout", zap.String("user_id", session.UserID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
