package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/accountd/internal/config"
	"github.com/pscheid92/accountd/internal/domain"
	apperrors "github.com/pscheid92/accountd/internal/errors"
)

// --- Mock implementations ---

type mockAccountService struct {
	registerFn      func(ctx context.Context, input domain.RegisterInput) (int64, error)
	getAccountFn    func(ctx context.Context, id int64) (*domain.Account, error)
	updateAccountFn func(ctx context.Context, id int64, input domain.UpdateInput) (int64, error)
	removeAccountFn func(ctx context.Context, id int64) (int64, error)
	authenticateFn  func(ctx context.Context, email, password string) (*domain.Account, error)
}

func (m *mockAccountService) Register(ctx context.Context, input domain.RegisterInput) (int64, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, input)
	}
	return 0, fmt.Errorf("not implemented")
}

func (m *mockAccountService) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	if m.getAccountFn != nil {
		return m.getAccountFn(ctx, id)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, id int64, input domain.UpdateInput) (int64, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(ctx, id, input)
	}
	return 0, fmt.Errorf("not implemented")
}

func (m *mockAccountService) RemoveAccount(ctx context.Context, id int64) (int64, error) {
	if m.removeAccountFn != nil {
		return m.removeAccountFn(ctx, id)
	}
	return 0, fmt.Errorf("not implemented")
}

func (m *mockAccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

type mockTokenIssuer struct {
	issueFn  func(accountID int64) (string, error)
	verifyFn func(token string) (int64, string, error)
}

func (m *mockTokenIssuer) Issue(accountID int64) (string, error) {
	if m.issueFn != nil {
		return m.issueFn(accountID)
	}
	return fmt.Sprintf("token-%d", accountID), nil
}

func (m *mockTokenIssuer) Verify(token string) (int64, string, error) {
	if m.verifyFn != nil {
		return m.verifyFn(token)
	}
	return 0, "", domain.ErrInvalidToken
}

type mockRevoker struct {
	revokeFn    func(ctx context.Context, jti string, ttl time.Duration) error
	isRevokedFn func(ctx context.Context, jti string) (bool, error)
}

func (m *mockRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, jti, ttl)
	}
	return nil
}

func (m *mockRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if m.isRevokedFn != nil {
		return m.isRevokedFn(ctx, jti)
	}
	return false, nil
}

type mockLimiter struct {
	allowFn func(ctx context.Context, email string) (bool, error)
	resetFn func(ctx context.Context, email string) error
	resets  []string
}

func (m *mockLimiter) Allow(ctx context.Context, email string) (bool, error) {
	if m.allowFn != nil {
		return m.allowFn(ctx, email)
	}
	return true, nil
}

func (m *mockLimiter) Reset(ctx context.Context, email string) error {
	m.resets = append(m.resets, email)
	if m.resetFn != nil {
		return m.resetFn(ctx, email)
	}
	return nil
}

// --- Test helpers ---

func newTestServer(t *testing.T, accounts domain.AccountService, opts ...func(*Server)) *Server {
	t.Helper()

	e := echo.New()
	// Install error middleware for tests to match production behavior
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    &config.Config{Port: "8080", TokenTTL: time.Hour},
		accounts:  accounts,
		tokens:    &mockTokenIssuer{},
		tokenTTL:  time.Hour,
		revoker:   &mockRevoker{},
		limiter:   &mockLimiter{},
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	// Register routes so endpoints are available for testing
	srv.registerRoutes()

	return srv
}

func withTokenIssuer(tokens domain.TokenIssuer) func(*Server) {
	return func(s *Server) {
		s.tokens = tokens
	}
}

func withRevoker(revoker tokenRevoker) func(*Server) {
	return func(s *Server) {
		s.revoker = revoker
	}
}

func withLimiter(limiter loginLimiter) func(*Server) {
	return func(s *Server) {
		s.limiter = limiter
	}
}

func withPostgresHealthCheck(db postgresHealthChecker) func(*Server) {
	return func(s *Server) {
		s.db = db
	}
}

func withRedisHealthCheck(redis redisHealthChecker) func(*Server) {
	return func(s *Server) {
		s.redis = redis
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return apperrors.Middleware()(handler)(c)
}
