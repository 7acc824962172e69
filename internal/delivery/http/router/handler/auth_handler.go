// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"happyshop/internal/delivery/http/response"
	"happyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for credential-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type userResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Created {
		return response.Conflict(c, "USER_ALREADY_EXISTS", "Username is already taken")
	}

	return response.Success(c, http.StatusCreated, userResponse{
		UserID:   output.User.ID,
		Username: output.User.Username,
		Role:     output.User.Role.String(),
	}, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userResponse{
		UserID:   output.User.ID,
		Username: output.User.Username,
		Role:     output.User.Role.String(),
	}, "Login successful")
}

// ChangePassword handles the password change request.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}

	output, err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		Username:    req.Username,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Updated {
		return response.NotFound(c, "USER_NOT_FOUND", "No account matches that username")
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated"}, "Password changed successfully")
}
