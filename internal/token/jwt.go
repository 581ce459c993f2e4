package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plantnet/plantnet-server/internal/model"
)

// Claims represents session JWT claims carrying the user identity.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Sessions live until the embedded expiry; there is no server-side
// revocation list.
const sessionTTL = 365 * 24 * time.Hour

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// GenerateSessionToken signs a session credential for the given claims.
func (j *JWT) GenerateSessionToken(claims model.SessionClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		Email: claims.Email,
		Role:  claims.Role,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// ParseSessionToken verifies the signature and expiry and extracts the
// embedded claims.
func (j *JWT) ParseSessionToken(tokenString string) (model.SessionClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.SessionClaims{}, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return model.SessionClaims{}, fmt.Errorf("session token is invalid")
	}
	if claims.Email == "" {
		return model.SessionClaims{}, fmt.Errorf("session token has no email claim")
	}
	return model.SessionClaims{Email: claims.Email, Role: claims.Role}, nil
}
