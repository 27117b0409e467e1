package server

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/accountd/internal/domain"
)

// successEnvelope is the uniform response shape for successful calls. Failures
// use errors.ErrorResponse, emitted by the error middleware.
type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func respondSuccess(c echo.Context, status int, data any) error {
	if err := c.JSON(status, successEnvelope{Success: true, Data: data}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// accountView is the client-facing shape of an account. The password hash has
// no field here, so it can never serialize.
type accountView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsCompany bool      `json:"is_company"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func viewOf(account *domain.Account) accountView {
	return accountView{
		ID:        account.ID,
		Email:     account.Email,
		Username:  account.Username,
		IsCompany: account.IsCompany,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
