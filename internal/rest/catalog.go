package rest

import (
	"context"
	"net/http"
	"time"
	"vestiaKiosk/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CatalogHandler struct {
		validate       *validator.Validate
		catalogService CatalogService
		timeout        time.Duration
	}

	CatalogService interface {
		ListItems(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error)
		GetItem(ctx context.Context, sku, storeID string) (*domain.CatalogItem, error)
	}

	CatalogQuery struct {
		StoreID  string `query:"storeId"`
		Category string `query:"category" validate:"omitempty,oneof=top bottom shoes outerwear accessory"`
		InStock  bool   `query:"inStock"`
	}
)

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		validate:       newValidator(),
		catalogService: svc,
		timeout:        10 * time.Second,
	}
}

// GET /api/v1/catalog?storeId=&category=&inStock=
func (h *CatalogHandler) ListItems(c echo.Context) error {
	var q CatalogQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid query parameters"})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.catalogService.ListItems(ctx, domain.CatalogFilter{
		StoreID:     q.StoreID,
		Category:    q.Category,
		InStockOnly: q.InStock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(items))
}

// GET /api/v1/catalog/:sku?storeId=
func (h *CatalogHandler) GetItem(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.catalogService.GetItem(ctx, c.Param("sku"), c.QueryParam("storeId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(item))
}
