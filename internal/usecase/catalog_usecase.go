package usecase

import (
	"context"

	"happyshop/internal/domain/entity"
)

// GetProductInput identifies a catalog item by its four character ID.
type GetProductInput struct {
	ProductID string
}

// GetProductOutput returns a single catalog item.
type GetProductOutput struct {
	Product *entity.Product
}

// ListProductsOutput returns the full catalog ordered by product ID.
type ListProductsOutput struct {
	Products []*entity.Product
}

// CatalogUsecase defines the interface for product catalog reads.
type CatalogUsecase interface {
	GetProduct(ctx context.Context, input *GetProductInput) (*GetProductOutput, error)
	ListProducts(ctx context.Context) (*ListProductsOutput, error)
}
