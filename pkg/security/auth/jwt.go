package auth

import (
	"fmt"
	"time"

	"github.com/Harshitduggal1/scheduling-software/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by a dashboard session token.
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// JWTService handles JWT operations
type JWTService struct {
	secretKey     []byte
	tokenDuration time.Duration
	issuer        string
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secretKey:     []byte(cfg.Auth.JWTSecret),
		tokenDuration: time.Duration(cfg.Auth.JWTExpiryHours) * time.Hour,
		issuer:        cfg.Auth.JWTIssuer,
	}
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID uuid.UUID, email, username, secret string, expiryHours int) (string, error) {
	claims := Claims{
		UserID:   userID,
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// RefreshToken reissues a token when it is within six hours of expiry.
func (s *JWTService) RefreshToken(tokenString string) (string, error) {
	claims, err := ValidateToken(tokenString, string(s.secretKey))
	if err != nil {
		return "", err
	}

	now := time.Now()
	expiry := claims.ExpiresAt.Time
	threshold := expiry.Add(-6 * time.Hour)

	if now.Before(threshold) {
		return tokenString, nil
	}

	return GenerateToken(
		claims.UserID,
		claims.Email,
		claims.Username,
		string(s.secretKey),
		int(s.tokenDuration.Hours()),
	)
}
