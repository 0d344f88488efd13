// Package tokenmanager issues and decodes the HS256 access tokens that
// carry a user's identity between login and every later request.
package tokenmanager

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"healthrecords-service/internal/app/config"
)

var (
	ErrInvalidDuration = errors.New("token lifetime must be positive")
	ErrTokenInvalid    = errors.New("token invalid or expired")
)

type TokenManager struct {
	secret []byte
	issuer string
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenManager(internalConfig *config.InternalConfig) *TokenManager {
	return &TokenManager{
		secret: []byte(internalConfig.JWT.Secret),
		issuer: internalConfig.JWT.Issuer,
	}
}

// Issue signs a token for the subject with the role claim embedded.
// The ttl must be positive; callers decide the lifetime, there is no
// fallback here.
func (m *TokenManager) Issue(subject, role string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("subject is required")
	}
	if ttl <= 0 {
		return "", ErrInvalidDuration
	}

	now := time.Now().UTC()
	claims := accessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode verifies the signature and expiry and returns the subject and
// role claims. Any parse or validation failure maps to ErrTokenInvalid
// so callers never branch on library error strings.
func (m *TokenManager) Decode(tokenString string) (string, string, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", "", ErrTokenInvalid
	}
	return claims.Subject, claims.Role, nil
}
