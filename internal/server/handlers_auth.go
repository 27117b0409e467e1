package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/accountd/internal/domain"
	apperrors "github.com/pscheid92/accountd/internal/errors"
	"github.com/pscheid92/accountd/internal/logging"
)

const (
	contextKeyAccountID = "account_id"
	contextKeyTokenID   = "token_id"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	ctx := c.Request().Context()

	allowed, err := s.limiter.Allow(ctx, req.Email)
	if err != nil {
		return apperrors.InternalError("failed to check login rate limit", err)
	}
	if !allowed {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
	}

	account, err := s.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return apperrors.UnauthorizedError("invalid credentials")
		}
		return err
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return apperrors.InternalError("failed to issue token", err)
	}

	// A successful login clears the attempt counter for this email.
	if err := s.limiter.Reset(ctx, req.Email); err != nil {
		logging.WithAccount(account.ID).Warn("Failed to reset login attempt counter", "error", err)
	}

	return respondSuccess(c, http.StatusOK, echo.Map{"token": token, "user": account.ID})
}

func (s *Server) handleLogout(c echo.Context) error {
	jti, ok := c.Get(contextKeyTokenID).(string)
	if !ok || jti == "" {
		return apperrors.UnauthorizedError("invalid token")
	}

	// Denylist the token for its remaining lifetime. Using the full TTL is a
	// slight over-approximation but keeps the store entry simple.
	if err := s.revoker.Revoke(c.Request().Context(), jti, s.tokenTTL); err != nil {
		return apperrors.InternalError("failed to revoke token", err)
	}

	return respondSuccess(c, http.StatusOK, echo.Map{"logged_out": true})
}

func (s *Server) handleMe(c echo.Context) error {
	accountID, ok := c.Get(contextKeyAccountID).(int64)
	if !ok {
		return apperrors.UnauthorizedError("invalid token")
	}

	account, err := s.accounts.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// The token outlived the account.
			return apperrors.UnauthorizedError("account no longer exists")
		}
		return err
	}

	return respondSuccess(c, http.StatusOK, viewOf(account))
}

// requireAuth validates the bearer token and rejects revoked tokens before the
// handler runs. On success the account id and token id land in the echo context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		accountID, jti, err := s.tokens.Verify(token)
		if err != nil {
			return apperrors.UnauthorizedError("invalid token")
		}

		revoked, err := s.revoker.IsRevoked(c.Request().Context(), jti)
		if err != nil {
			return apperrors.InternalError("failed to check token revocation", err)
		}
		if revoked {
			return apperrors.UnauthorizedError("token has been revoked")
		}

		c.Set(contextKeyAccountID, accountID)
		c.Set(contextKeyTokenID, jti)
		return next(c)
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", apperrors.UnauthorizedError("missing authorization header")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", apperrors.UnauthorizedError("authorization header must use the Bearer scheme")
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", apperrors.UnauthorizedError("missing bearer token")
	}
	return token, nil
}
