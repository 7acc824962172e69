package handler

import (
	"log/slog"
	"net/http"

	"happyshop/internal/delivery/http/response"
	"happyshop/internal/domain/entity"
	"happyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type productResponse struct {
	ProductID   string  `json:"productId"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Image       string  `json:"image"`
	InStock     int     `json:"inStock"`
}

func toProductResponse(p *entity.Product) productResponse {
	return productResponse{
		ProductID:   p.ID,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		Image:       p.Image,
		InStock:     p.InStock,
	}
}

// GetProduct handles the single product lookup request.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID is required")
	}

	output, err := h.uc.GetProduct(c.Request().Context(), &usecase.GetProductInput{ProductID: productID})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(output.Product), "Product retrieved successfully")
}

// ListProducts handles the catalog listing request.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	products := make([]productResponse, 0, len(output.Products))
	for _, p := range output.Products {
		products = append(products, toProductResponse(p))
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}
