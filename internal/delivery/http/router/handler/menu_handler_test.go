package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	mockuc "storefront/internal/mocks/usecase"
)

func TestMenuHandler_BuildsShopSubmenuFromCategories(t *testing.T) {
	catalog := new(mockuc.MockCatalogUsecase)
	catalog.On("ListCategories", mock.Anything).Return([]entity.Category{
		{ID: 1, Name: "Divot Tools"},
		{ID: 2, Name: "Hats"},
	})

	h := NewMenuHandler(context.Background(), catalog)
	rec, c := performJSON(echo.New(), http.MethodGet, "/api/menu", "")

	require.NoError(t, h.GetMenu(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, h.menu, 4)
	shop := h.menu[1]
	assert.Equal(t, entity.MenuNodeSubmenu, shop.Kind)
	require.Len(t, shop.Children, 3)
	assert.Equal(t, "All Products", shop.Children[0].Label)
	assert.Equal(t, "Divot Tools", shop.Children[1].Label)
	assert.Equal(t, "/shop?category=2", shop.Children[2].URL)
	for i := range h.menu {
		require.NoError(t, h.menu[i].Validate())
	}
	catalog.AssertExpectations(t)
}
