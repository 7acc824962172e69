package impl

import (
	"context"
	"testing"

	"happyshop/internal/domain/entity"
	domainerrors "happyshop/internal/domain/errors"
	"happyshop/internal/domain/repository"
	mockRepo "happyshop/internal/mocks/repository"
	mockSvc "happyshop/internal/mocks/service"
	"happyshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAuthService(AuthServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return authServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

// expectSignupTransaction wires the transaction mock so the unit of work runs
// against the given repository and its error is propagated to the caller.
func expectSignupTransaction(t *testing.T, fx authServiceFixtures, ctx context.Context, txUserRepo repository.UserRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Username: "  Alice  ", Password: "secret123"}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 7
		}).
		Return(nil)

	expectSignupTransaction(t, fx, ctx, txUserRepo)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Created)
	require.NotNil(t, output.User)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.EqualValues(t, 7, output.User.ID)
}

func TestAuthService_Signup_ExplicitRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "root").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	expectSignupTransaction(t, fx, ctx, txUserRepo)

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Username: "root",
		Password: "secret123",
		Role:     entity.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Username: "alice", Password: "secret123"}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{ID: 1, Username: "alice"}, nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.Created)
	assert.Nil(t, output.User)

	// The taken username is detected before any hashing work happens.
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Signup_DuplicateRaceOnInsert(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Username: "alice", Password: "secret123"}

	// Availability check passes but a concurrent writer wins the insert. The
	// unique constraint surfaces as a duplicate, not an error.
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUsername)

	expectSignupTransaction(t, fx, ctx, txUserRepo)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.Created)
}

func TestAuthService_Signup_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "short username", username: "ab", password: "secret123"},
		{name: "whitespace only username", username: "   ", password: "secret123"},
		{name: "short password", username: "alice", password: "12345"},
		{name: "empty password", username: "alice", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			output, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
				Username: tt.username,
				Password: tt.password,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, output)
		})
	}
}

func TestAuthService_Signup_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.userRepo.EXPECT().
		FindByUsername(context.Background(), "alice").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("", errors.New("bcrypt exploded"))

	output, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Username: "alice",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Nil(t, output)
}

func TestAuthService_Signup_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storeErr := errors.New("connection reset")

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(storeErr)

	expectSignupTransaction(t, fx, ctx, txUserRepo)

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "alice", Password: "secret123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, output)
}

func TestAuthService_Signup_AvailabilityCheckFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storeErr := errors.New("connection reset")

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, storeErr)

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "alice", Password: "secret123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, output)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 3, Username: "alice", PasswordHash: "stored_hash", Role: entity.RoleCustomer}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.hasher.EXPECT().Check("secret123", "stored_hash").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ALICE", Password: "secret123"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, stored, output.User)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 3, Username: "alice", PasswordHash: "stored_hash"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storeErr := errors.New("connection reset")

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, storeErr)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("newsecret").Return("new_hash", nil)
	fx.userRepo.EXPECT().UpdatePasswordHash(ctx, "alice", "new_hash").Return(true, nil)

	output, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Username:    " Alice ",
		NewPassword: "newsecret",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Updated)
}

func TestAuthService_ChangePassword_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("newsecret").Return("new_hash", nil)
	fx.userRepo.EXPECT().UpdatePasswordHash(ctx, "ghost", "new_hash").Return(false, nil)

	output, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Username:    "ghost",
		NewPassword: "newsecret",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.Updated)
}

func TestAuthService_ChangePassword_ShortPassword(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
		Username:    "alice",
		NewPassword: "123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}
