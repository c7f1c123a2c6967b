package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/api/dto"
	"github.com/Harshitduggal1/scheduling-software/pkg/security/auth"
)

// AuthHandler serves session token maintenance.
type AuthHandler struct {
	jwt *auth.JWTService
}

func NewAuthHandler(jwt *auth.JWTService) *AuthHandler {
	return &AuthHandler{jwt: jwt}
}

// Refresh reissues the caller's bearer token when it is close to expiry.
// A token with plenty of life left comes back unchanged, so clients can
// call this on a timer without churning their session.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := c.GetString("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	refreshed, err := h.jwt.RefreshToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.TokenResponse{Token: refreshed}})
}
