package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// MenuHandler serves the site navigation tree
type MenuHandler struct {
	menu []entity.MenuNode
}

// NewMenuHandler builds the navigation once at startup. The shop submenu is
// derived from the catalog categories, so it always matches the data export.
func NewMenuHandler(ctx context.Context, catalog usecase.CatalogUsecase) *MenuHandler {
	categories := catalog.ListCategories(ctx)
	shopChildren := make([]entity.MenuNode, 0, len(categories)+1)
	shopChildren = append(shopChildren, entity.NewMenuLink("All Products", "/shop"))
	for _, category := range categories {
		shopChildren = append(shopChildren,
			entity.NewMenuLink(category.Name, fmt.Sprintf("/shop?category=%d", category.ID)))
	}

	return &MenuHandler{
		menu: []entity.MenuNode{
			entity.NewMenuLink("Home", "/"),
			entity.NewSubmenu("Shop", shopChildren...).
				WithDescription("Browse the full product lineup"),
			entity.NewMenuLink("Build Your Own", "/custom").
				WithDescription("Configure a custom divot tool"),
			entity.NewMenuLink("Contact", "/contact"),
		},
	}
}

// GetMenu returns the navigation tree.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.menu, "")
}
