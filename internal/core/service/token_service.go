package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clinicore/user-system/internal/core/domain"
)

// defaultTokenTTL is the session lifetime when configuration supplies none.
const defaultTokenTTL = 15 * 24 * time.Hour

// Claims are the identity facts embedded in a session token.
type Claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens. Verification
// is a pure computation: no server-side session state is consulted, which is
// why revocation before natural expiry is not supported.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the user's id, email, and role, valid for the
// configured lifetime from now.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()
	claims := &Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry, returning the embedded claims.
// Failure kinds are distinguished so callers can log them separately, even
// though the access guard responds identically to all three.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, domain.ErrTokenSignatureInvalid
	default:
		return nil, domain.ErrTokenMalformed
	}
}
