// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"happyshop/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account. Role is
// optional; an empty or unknown value falls back to the customer role.
type SignupInput struct {
	Username string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput defines the data required to replace a stored password.
type ChangePasswordInput struct {
	Username    string
	NewPassword string
}

// --- Output DTOs ---

// SignupOutput reports whether a new account was created. Created is false
// when the username was already taken.
type SignupOutput struct {
	Created bool
	User    *entity.User
}

// LoginOutput returns the authenticated user after a successful login.
type LoginOutput struct {
	User *entity.User
}

// ChangePasswordOutput reports whether a stored credential was replaced.
// Updated is false when no account matched the username.
type ChangePasswordOutput struct {
	Updated bool
}

// AuthUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*ChangePasswordOutput, error)
}
