package services

import (
	"fmt"
	"time"

	"storefront/models"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService signs and verifies session tokens for the acting user.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// GenerateToken issues a token carrying the user's id, name and role.
func (s *TokenService) GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Name,
		"role":     string(user.Role),
		"exp":      time.Now().Add(time.Hour * 24).Unix(), // Token expires in 24 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Session is the identity extracted from a verified token.
type Session struct {
	UserID   string
	UserName string
	Role     models.Role
}

// ParseToken verifies the signature and extracts the session claims.
func (s *TokenService) ParseToken(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, _ := claims["user_id"].(string)
	userName, _ := claims["username"].(string)
	roleStr, _ := claims["role"].(string)
	role := models.Role(roleStr)
	if userID == "" || !role.IsValid() {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &Session{UserID: userID, UserName: userName, Role: role}, nil
}
