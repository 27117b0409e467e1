package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pscheid92/accountd/internal/metrics"
)

// LoginLimiter bounds login attempts per email with a fixed window counter.
// It slows credential stuffing without tracking clients; the counter resets
// when the window key expires.
type LoginLimiter struct {
	rdb    *goredis.Client
	limit  int64
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing limit attempts per window.
func NewLoginLimiter(rdb *goredis.Client, limit int64, window time.Duration) *LoginLimiter {
	return &LoginLimiter{rdb: rdb, limit: limit, window: window}
}

func attemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
}

// Allow records an attempt for the email and reports whether it is within the
// limit. INCR and EXPIRE run in one pipeline so the window is always set.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	pipe := l.rdb.TxPipeline()
	count := pipe.Incr(ctx, attemptKey(email))
	pipe.Expire(ctx, attemptKey(email), l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record login attempt: %w", err)
	}

	if count.Val() > l.limit {
		metrics.LoginsThrottledTotal.Inc()
		return false, nil
	}
	return true, nil
}

// Reset clears the attempt counter, called after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.rdb.Del(ctx, attemptKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}
