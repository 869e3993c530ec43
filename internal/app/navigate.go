package app

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ecotupper/ecotupperapp/internal/middleware"
	"github.com/Ecotupper/ecotupperapp/internal/nav"
)

type navigateRequest struct {
	Screen  string `json:"screen"`
	Payload any    `json:"payload"`
}

// Navigate performs a forward transition. The payload is passed through the
// controller's boundary validation: mismatched types are silently dropped
// and the screen opens without a parameter.
func (h *Handler) Navigate(c echo.Context) error {
	s := middleware.CurrentSession(c)

	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	target, ok := nav.ParseScreen(req.Screen)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown screen"})
	}

	s.Navigate(target, normalizePayload(req.Payload))

	st := s.Snapshot()
	return c.JSON(http.StatusOK, echo.Map{"screen": st.Screen, "previous": st.Previous})
}

// Back returns to the screen held by the single previous slot.
func (h *Handler) Back(c echo.Context) error {
	s := middleware.CurrentSession(c)
	s.Back()

	st := s.Snapshot()
	return c.JSON(http.StatusOK, echo.Map{"screen": st.Screen, "previous": st.Previous})
}

// GetView composes the render description for the current screen. The
// optional ?q= search term shapes the home and allitems lists.
func (h *Handler) GetView(c echo.Context) error {
	s := middleware.CurrentSession(c)

	d, err := h.composer.Compose(c.Request().Context(), s.Snapshot(), c.QueryParam("q"))
	if err != nil {
		h.logger.WithError(err).Error("failed to compose view")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not compose view"})
	}
	return c.JSON(http.StatusOK, d)
}

// normalizePayload maps JSON numbers to ints so that item ids survive the
// decoding round-trip. Fractional numbers stay as-is and are dropped by the
// controller's type check.
func normalizePayload(payload any) any {
	if f, ok := payload.(float64); ok && f == math.Trunc(f) {
		return int(f)
	}
	return payload
}
