// Package token issues and verifies the bearer credentials used by the API.
// Tokens are HS256-signed with a single process-wide secret; there is no
// per-session state, revocation is handled by short expiry plus the live
// role re-checks performed by the privileged middleware gates.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

// Claims is the payload embedded in every issued token. Role is a snapshot
// taken at issuance time; it is never authoritative for admin-level access.
type Claims struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer mints signed, time-limited tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. A non-positive ttl falls back to 24h.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity and role snapshot.
func (i *Issuer) Issue(userID int64, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration { return i.ttl }
