package app

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Ecotupper/ecotupperapp/internal/alerts"
	"github.com/Ecotupper/ecotupperapp/internal/cart"
	"github.com/Ecotupper/ecotupperapp/internal/catalog"
	"github.com/Ecotupper/ecotupperapp/internal/middleware"
)

func (h *Handler) GetCart(c echo.Context) error {
	s := middleware.CurrentSession(c)
	st := s.Snapshot()

	lines := st.CartLines
	if lines == nil {
		lines = []cart.Line{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"lines":       lines,
		"item_count":  st.CartCount,
		"subtotal":    st.CartSubtotal,
		"service_fee": cart.ServiceFee,
		"total":       st.CartTotal,
	})
}

type addToCartRequest struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// AddToCart inserts or increments a cart line. The requested quantity is
// clamped to [1, stock] the way the detail screen's quantity selector does;
// the running line total is not re-clamped on increment.
func (h *Handler) AddToCart(c echo.Context) error {
	s := middleware.CurrentSession(c)

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	item, err := h.catalog.GetByID(c.Request().Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		h.logger.WithError(err).Error("failed to fetch item for cart")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add to cart"})
	}

	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}
	if qty > item.Stock {
		qty = item.Stock
	}
	if qty < 1 {
		// Out-of-stock items never enter the cart.
		return c.JSON(http.StatusConflict, echo.Map{"error": "item out of stock"})
	}

	s.AddToCart(item, qty)
	return c.JSON(http.StatusOK, echo.Map{"item_count": s.Snapshot().CartCount})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets a line's quantity. Zero or less removes the line; an
// id with no line is a no-op.
func (h *Handler) UpdateCartItem(c echo.Context) error {
	s := middleware.CurrentSession(c)

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	s.UpdateCartQuantity(itemID, req.Quantity)
	return c.JSON(http.StatusOK, echo.Map{"item_count": s.Snapshot().CartCount})
}

func (h *Handler) RemoveCartItem(c echo.Context) error {
	s := middleware.CurrentSession(c)

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	s.RemoveCartItem(itemID)
	return c.JSON(http.StatusOK, echo.Map{"item_count": s.Snapshot().CartCount})
}

type checkoutRequest struct {
	Email string `json:"email"`
}

// Checkout charges nothing and records nothing: it clears the cart and
// reports the totals. An optional email receives an async receipt.
func (h *Handler) Checkout(c echo.Context) error {
	s := middleware.CurrentSession(c)

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	subtotal, total, count := s.Checkout()
	if count == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
	}

	h.alerts.EnqueueCheckoutReceipt(alerts.CheckoutReceiptPayload{
		SessionID: s.ID,
		Email:     req.Email,
		ItemCount: count,
		Subtotal:  subtotal.StringFixed(2),
		Total:     total.StringFixed(2),
		Envelope: alerts.EmailEnvelope{
			To:      req.Email,
			Subject: "Tu recibo de EcoTupper",
			Body:    "Gracias por rescatar comida. Total: " + total.StringFixed(2) + " €",
		},
	})

	return c.JSON(http.StatusOK, echo.Map{
		"subtotal":    subtotal,
		"service_fee": cart.ServiceFee,
		"total":       total,
		"item_count":  count,
	})
}
