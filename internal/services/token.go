package services

import (
	"time"

	relay_errors "relay-chat/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed session tokens. The secret is
// fixed at construction and never read from the environment at request time.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service. A zero ttl issues non-expiring
// tokens; sessions then live until the secret is rotated.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

func (s *TokenService) Issue(userID, email string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Validate(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, relay_errors.ErrAuthenticationFailed
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, relay_errors.ErrAuthenticationFailed
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, relay_errors.ErrAuthenticationFailed
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, relay_errors.ErrAuthenticationFailed
	}

	return *claims, nil
}
