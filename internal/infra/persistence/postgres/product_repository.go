package postgres

import (
	"context"

	"happyshop/internal/domain/entity"
	"happyshop/internal/domain/repository"
	"happyshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product by its four character code.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return productM.ToDomain(), nil
}

// List returns the whole catalog ordered by product id.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("product_id").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, productM.ToDomain())
	}

	return products, nil
}
