// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "happyshop/internal/delivery/context"
	"happyshop/internal/domain/entity"
	domainerrors "happyshop/internal/domain/errors"
	"happyshop/internal/domain/repository"
	"happyshop/internal/domain/service"
	"happyshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateCredentials(username, password string) error {
	if len(username) < minUsernameLength {
		return domainerrors.ErrValidationFailed.WrapMessage("username must be at least 3 characters")
	}
	if len(password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password must be at least 6 characters")
	}

	return nil
}

// Signup registers a new customer account. A taken username is reported
// through Created=false rather than an error, so callers can distinguish
// a duplicate from an actual failure.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	username := entity.NormalizeUsername(input.Username)

	if err := validateCredentials(username, input.Password); err != nil {
		srv.log(ctx).Warn("Signup validation failed", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	// Check availability before paying the bcrypt cost, so duplicate
	// attempts stay cheap. The storage uniqueness constraint remains the
	// actual safety mechanism against concurrent signups.
	_, findErr := srv.userRepo.FindByUsername(ctx, username)
	if findErr == nil {
		srv.log(ctx).Info("Signup rejected, username already taken", slog.String("username", username))

		return &usecase.SignupOutput{Created: false}, nil
	}
	if !errors.Is(findErr, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check username availability", slog.String("username", username), slog.Any("error", findErr))

		return nil, errors.Wrap(findErr, "failed to check username availability")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password during signup")
	}

	role := input.Role
	if !role.IsValid() {
		role = entity.RoleCustomer
	}

	var created *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		newUser := &entity.User{
			Username:     username,
			PasswordHash: hashedPassword,
			Role:         role,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during signup")
		}
		created = newUser

		return nil
	})

	if errors.Is(err, repository.ErrDuplicateUsername) {
		srv.log(ctx).Info("Signup rejected, username already taken", slog.String("username", username))

		return &usecase.SignupOutput{Created: false}, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Int64("userID", created.ID))

	return &usecase.SignupOutput{Created: true, User: created}, nil
}

// Login verifies a username and password pair. An unknown username and a
// wrong password both map to ErrInvalidCredentials so the response does not
// reveal which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := entity.NormalizeUsername(input.Username)

	srv.log(ctx).Debug("Starting login", slog.String("username", username))

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		srv.log(ctx).Error("Failed to load user during login", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	// bcrypt comparison is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{User: user}, nil
}

// ChangePassword replaces the stored hash for an account. Updated is false
// when no account matched the username.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	username := entity.NormalizeUsername(input.Username)

	if err := validateCredentials(username, input.NewPassword); err != nil {
		srv.log(ctx).Warn("Password change validation failed", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during password change", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password during password change")
	}

	// Single statement, use the direct repository instance.
	updated, err := srv.userRepo.UpdatePasswordHash(ctx, username, hashedPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to update password hash", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update password hash")
	}
	if !updated {
		srv.log(ctx).Info("Password change skipped, unknown username", slog.String("username", username))
	}

	return &usecase.ChangePasswordOutput{Updated: updated}, nil
}
