package handler // handler contains the catalog endpoints feeding the tool dropdowns

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laurvh/food-for-you/internal/repository"
)

// CatalogHandler serves the read-only lists that populate selection
// dropdowns across every tool: food bank locations, neighborhoods, item
// categories and item names.
type CatalogHandler struct {
	FoodBanks *repository.FoodBankRepo
	Items     *repository.ItemRepo
}

// NewCatalogHandler constructs a CatalogHandler and panics if a dependency is nil.
func NewCatalogHandler(foodBanks *repository.FoodBankRepo, items *repository.ItemRepo) *CatalogHandler {
	if foodBanks == nil || items == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{FoodBanks: foodBanks, Items: items}
}

// Locations handles GET /v1/catalog/locations.  The list leads with an
// empty sentinel meaning "unselected".
func (h *CatalogHandler) Locations(c echo.Context) error {
	out, err := h.FoodBanks.ListLocations(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}

// Neighborhoods handles GET /v1/catalog/neighborhoods.
func (h *CatalogHandler) Neighborhoods(c echo.Context) error {
	out, err := h.FoodBanks.ListNeighborhoods(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}

// Categories handles GET /v1/catalog/categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	out, err := h.Items.ListCategories(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}

// ItemNames handles GET /v1/catalog/items.
func (h *CatalogHandler) ItemNames(c echo.Context) error {
	out, err := h.Items.ListNames(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}
