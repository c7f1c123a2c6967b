package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshitduggal1/scheduling-software/pkg/config"
)

const testSecret = "test-secret"

func testService(expiryHours int) *JWTService {
	return NewJWTService(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testSecret,
			JWTExpiryHours: expiryHours,
			JWTIssuer:      "calmarshal",
		},
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "jan@example.com", "jan", testSecret, 24)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "jan@example.com", claims.Email)
	assert.Equal(t, "jan", claims.Username)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "jan@example.com", "jan", testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateToken(token, "another-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "jan@example.com", "jan", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.Error(t, err)
}

func TestRefreshTokenFarFromExpiry(t *testing.T) {
	svc := testService(24)
	token, err := GenerateToken(uuid.New(), "jan@example.com", "jan", testSecret, 24)
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, token, refreshed, "a fresh token is returned unchanged")
}

func TestRefreshTokenNearExpiry(t *testing.T) {
	svc := testService(24)
	userID := uuid.New()
	token, err := GenerateToken(userID, "jan@example.com", "jan", testSecret, 1)
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)
	assert.NotEqual(t, token, refreshed)

	claims, err := ValidateToken(refreshed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now().Add(23*time.Hour)),
		"reissued token carries the full configured lifetime")
}

func TestRefreshTokenInvalid(t *testing.T) {
	svc := testService(24)
	_, err := svc.RefreshToken("not-a-token")
	assert.Error(t, err)
}
