package orders

import (
	"errors"
	"net/http"

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

func (h *Handler) ListOrders(c echo.Context) error {
	all, err := h.store.GetAll(c.Request().Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to fetch orders")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch orders"})
	}
	if all == nil {
		all = []Order{}
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": all})
}

func (h *Handler) GetOrder(c echo.Context) error {
	order, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		h.logger.WithError(err).WithField("order_id", c.Param("id")).Error("failed to fetch order")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch order"})
	}
	return c.JSON(http.StatusOK, echo.Map{"order": order})
}
