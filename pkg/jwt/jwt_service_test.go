package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreshPlan-Backend/domain"
)

func newTestJWTService() JWTService {
	return &jwtService{secretKey: "test-secret", issuer: "FRESHPLAN"}
}

func TestTokenUserRoundTrip(t *testing.T) {
	service := newTestJWTService()

	token := service.GenerateTokenUser("user-123", domain.RoleUser)
	require.NotEmpty(t, token)

	id, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	service := newTestJWTService()

	_, _, err := service.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenRejectsWrongSecret(t *testing.T) {
	issued := &jwtService{secretKey: "secret-a", issuer: "FRESHPLAN"}
	verifier := &jwtService{secretKey: "secret-b", issuer: "FRESHPLAN"}

	token := issued.GenerateTokenUser("user-123", domain.RoleUser)

	_, _, err := verifier.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenVerificationRoundTrip(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateTokenVerification(map[string]any{"email": "a@b.com"}, time.Minute)
	require.NoError(t, err)

	claims, err := service.ValidateTokenVerification(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims["email"])
}

func TestTokenVerificationExpired(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateTokenVerification(map[string]any{"email": "a@b.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenVerification(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
