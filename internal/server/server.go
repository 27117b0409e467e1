package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/pscheid92/accountd/internal/config"
	"github.com/pscheid92/accountd/internal/domain"
	apperrors "github.com/pscheid92/accountd/internal/errors"
)

// tokenRevoker is the slice of the redis token store the server needs.
type tokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// loginLimiter bounds login attempts per email.
type loginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}

// postgresHealthChecker is a minimal interface for PostgreSQL health checks
type postgresHealthChecker interface {
	Ping(ctx context.Context) error
}

// redisHealthChecker is a minimal interface for Redis health checks
type redisHealthChecker interface {
	Ping(ctx context.Context) *goredis.StatusCmd
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	accounts  domain.AccountService
	tokens    domain.TokenIssuer
	tokenTTL  time.Duration
	revoker   tokenRevoker
	limiter   loginLimiter
	db        postgresHealthChecker
	redis     redisHealthChecker
	startTime time.Time
}

func NewServer(
	cfg *config.Config,
	accounts domain.AccountService,
	tokens domain.TokenIssuer,
	revoker tokenRevoker,
	limiter loginLimiter,
	db postgresHealthChecker,
	redis redisHealthChecker,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		accounts:  accounts,
		tokens:    tokens,
		tokenTTL:  cfg.TokenTTL,
		revoker:   revoker,
		limiter:   limiter,
		db:        db,
		redis:     redis,
		startTime: time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
