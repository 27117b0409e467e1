// Package token issues and verifies signed session tokens.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/pscheid92/accountd/internal/domain"
)

const issuerName = "accountd"

// Issuer creates HS256-signed JWTs bound to an account id. The clock is
// injected so expiry behavior is testable with a fake clock.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

func NewIssuer(secret string, ttl time.Duration, clock clockwork.Clock) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

// Issue produces a token carrying the account id as subject and a random jti
// used as a revocation handle.
func (i *Issuer) Issue(accountID int64) (string, error) {
	now := i.clock.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    issuerName,
		Subject:   strconv.FormatInt(accountID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// TTL returns the configured token lifetime. Revocation entries use the same
// window so a denylisted jti outlives every token that carries it.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Verify parses and validates a token, returning the account id and jti.
// Expired, malformed, and forged tokens all collapse into ErrInvalidToken so
// the response never reveals why verification failed.
func (i *Issuer) Verify(tokenStr string) (int64, string, error) {
	claims := new(jwt.RegisteredClaims)
	_, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return 0, "", domain.ErrInvalidToken
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, "", domain.ErrInvalidToken
	}

	return accountID, claims.ID, nil
}
