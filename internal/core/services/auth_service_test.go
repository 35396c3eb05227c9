package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/services"
	"github.com/klearr/customs-calculator/internal/utils"
)

func newTestAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	return services.NewAuthService("ops", hash, "test-secret", "customs-calculator", time.Hour)
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	token, expiresAt, err := svc.Login(ctx, "ops", "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, "customs-calculator", claims.Issuer)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), "ops", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAuthService_Login_WrongUsername(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), "admin", "correct horse battery staple")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
