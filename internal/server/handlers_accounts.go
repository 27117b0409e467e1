package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/accountd/internal/app"
	"github.com/pscheid92/accountd/internal/domain"
	apperrors "github.com/pscheid92/accountd/internal/errors"
)

type registerRequest struct {
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	IsCompany looseBool `json:"is_company"`
}

type updateRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	input := domain.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		IsCompany: bool(req.IsCompany),
	}

	id, err := s.accounts.Register(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return apperrors.ConflictError("email already registered")
		}
		return err
	}

	return respondSuccess(c, http.StatusCreated, echo.Map{"user": id})
}

func (s *Server) handleShow(c echo.Context) error {
	id, err := app.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	account, err := s.accounts.GetAccount(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return apperrors.NotFoundError("account not found")
		}
		return err
	}

	return respondSuccess(c, http.StatusOK, viewOf(account))
}

func (s *Server) handleUpdate(c echo.Context) error {
	id, err := app.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	input := domain.UpdateInput{Username: req.Username, Password: req.Password}
	updated, err := s.accounts.UpdateAccount(c.Request().Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return apperrors.NotFoundError("account not found")
		}
		return err
	}

	return respondSuccess(c, http.StatusOK, echo.Map{"updated": updated})
}

func (s *Server) handleDelete(c echo.Context) error {
	id, err := app.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	removed, err := s.accounts.RemoveAccount(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return apperrors.NotFoundError("account not found")
		}
		return err
	}

	return respondSuccess(c, http.StatusOK, echo.Map{"deleted": removed})
}
