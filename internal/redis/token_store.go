package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pscheid92/accountd/internal/metrics"
)

// TokenStore keeps a denylist of revoked token ids (jti). Entries expire with
// the token itself, so the list never grows past the set of live tokens.
type TokenStore struct {
	rdb *goredis.Client
}

func NewTokenStore(rdb *goredis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

func revocationKey(jti string) string {
	return fmt.Sprintf("revoked_token:%s", jti)
}

// Revoke marks a token id as revoked for the remaining token lifetime.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, revocationKey(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	metrics.TokensRevokedTotal.Inc()
	return nil
}

// IsRevoked reports whether a token id is on the denylist.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revocationKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
