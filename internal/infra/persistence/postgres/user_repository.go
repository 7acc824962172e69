package postgres

import (
	"context"
	"time"

	"happyshop/internal/domain/entity"
	domainerrors "happyshop/internal/domain/errors"
	"happyshop/internal/domain/repository"
	"happyshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the implementation as a repository.UserRepository interface,
// adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByUsername retrieves a single user record by normalized username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return userM.ToDomain(), nil
}

// Create persists a new user record. The username uniqueness constraint is
// the safety mechanism against concurrent signups; a violation surfaces as
// repository.ErrDuplicateUsername for the usecase to convert.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)
	if userM.CreatedAt.IsZero() {
		userM.CreatedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Write back the store-assigned values.
	user.ID = userM.UserID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// UpdatePasswordHash replaces the stored digest for the given username.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, username, newHash string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Update("password_hash", newHash)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}

	return result.RowsAffected > 0, nil
}
