package repository

import (
	"context"
	"errors"

	"happyshop/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository provides read access to the seeded catalog. Rows are
// written only by the schema bootstrapper.
type ProductRepository interface {
	// FindByID retrieves a single product by its four character code.
	// Returns ErrProductNotFound when no record exists.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// List returns the whole catalog ordered by product id.
	List(ctx context.Context) ([]*entity.Product, error)
}
