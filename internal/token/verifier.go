package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

// Verifier validates presented tokens. It is pure computation: no store
// access, safe under arbitrary concurrency.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify checks signature and expiry and returns the embedded claims.
// Every failure collapses to one of the three domain sentinels; partial
// claims are never returned.
func (v *Verifier) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrInvalidSignature
		default:
			return nil, domain.ErrMalformedToken
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrMalformedToken
	}
	if claims.UserID <= 0 || !claims.Role.Valid() {
		return nil, domain.ErrMalformedToken
	}
	return claims, nil
}
