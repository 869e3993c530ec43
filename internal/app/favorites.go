package app

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Ecotupper/ecotupperapp/internal/catalog"
	"github.com/Ecotupper/ecotupperapp/internal/middleware"
)

// ToggleFavorite flips favorite membership for the item id. Ids that are
// not in the catalog are tolerated.
func (h *Handler) ToggleFavorite(c echo.Context) error {
	s := middleware.CurrentSession(c)

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	favorite := s.ToggleFavorite(itemID)
	return c.JSON(http.StatusOK, echo.Map{"item_id": itemID, "favorite": favorite})
}

// GetFavorites returns the favorited catalog items in catalog order. Stale
// ids simply have no matching item.
func (h *Handler) GetFavorites(c echo.Context) error {
	s := middleware.CurrentSession(c)
	st := s.Snapshot()

	items, err := h.catalog.GetAll(c.Request().Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to fetch catalog for favorites")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch favorites"})
	}

	favorite := make(map[int]bool, len(st.FavoriteIDs))
	for _, id := range st.FavoriteIDs {
		favorite[id] = true
	}

	kept := []catalog.Item{}
	for _, item := range items {
		if favorite[item.ID] {
			kept = append(kept, item)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"ids": st.FavoriteIDs, "items": kept})
}
