package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshitduggal1/scheduling-software/pkg/security/auth"
)

const testJWTSecret = "test-secret"

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(testJWTSecret), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id in context"})
			return
		}
		username, _ := GetUsername(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "username": username})
	})
	return router
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router := authTestRouter()
	userID := uuid.New()
	token, err := auth.GenerateToken(userID, "jan@example.com", "jan", testJWTSecret, 1)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "jan")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := authTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := authTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	router := authTestRouter()
	token, err := auth.GenerateToken(uuid.New(), "jan@example.com", "jan", "another-secret", 1)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
