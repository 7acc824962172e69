package impl

import (
	"context"
	"log/slog"

	deliverycontext "happyshop/internal/delivery/context"
	domainerrors "happyshop/internal/domain/errors"
	"happyshop/internal/domain/repository"
	"happyshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProduct looks up a single catalog item by its ID.
func (srv *catalogService) GetProduct(ctx context.Context, input *usecase.GetProductInput) (*usecase.GetProductOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Debug("Product not found", slog.String("productID", input.ProductID))

			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}
		srv.log(ctx).Error("Failed to load product", slog.String("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load product")
	}

	return &usecase.GetProductOutput{Product: product}, nil
}

// ListProducts returns the full catalog ordered by product ID.
func (srv *catalogService) ListProducts(ctx context.Context) (*usecase.ListProductsOutput, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ListProductsOutput{Products: products}, nil
}
