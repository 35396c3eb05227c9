package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/utils"
)

// AuthService authenticates the operations account used for rate and
// currency maintenance endpoints. Single configured account; there is no
// user store.
type AuthService struct {
	adminUsername     string
	adminPasswordHash string
	jwtSecret         string
	jwtIssuer         string
	jwtExpiry         time.Duration
}

// NewAuthService creates a new AuthService from configured credentials.
func NewAuthService(adminUsername, adminPasswordHash, jwtSecret, jwtIssuer string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
		jwtIssuer:         jwtIssuer,
		jwtExpiry:         jwtExpiry,
	}
}

// Login verifies the admin credentials and issues a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passwordMatch := utils.CheckPasswordHash(password, s.adminPasswordHash)
	if !usernameMatch || !passwordMatch {
		return "", time.Time{}, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}

	expiresAt := time.Now().Add(s.jwtExpiry)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    s.jwtIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}
