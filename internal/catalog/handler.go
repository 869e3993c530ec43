package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	store  *Store
	logger *logrus.Logger
}

func NewHandler(store *Store, logger *logrus.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// ListItems returns the catalog, optionally searched with ?q= and shaped
// with ?view=. An unknown view value is dropped and the plain list returned.
func (h *Handler) ListItems(c echo.Context) error {
	items, err := h.store.GetAll(c.Request().Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to fetch catalog")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch items"})
	}

	items = Search(items, c.QueryParam("q"))
	if v := c.QueryParam("view"); v != "" {
		if f, ok := ParseFilter(v); ok {
			items = View(items, f)
		}
	}

	if items == nil {
		items = []Item{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *Handler) GetItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	item, err := h.store.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		h.logger.WithError(err).WithField("item_id", id).Error("failed to fetch item")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch item"})
	}

	return c.JSON(http.StatusOK, echo.Map{"item": item})
}
