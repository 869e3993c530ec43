package captioning

import (
	"encoding/base64"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	describer Describer
	logger    *logrus.Logger
}

// NewHandler wires a describer; a nil describer means captioning is not
// configured and every request gets the inline failure message.
func NewHandler(describer Describer, logger *logrus.Logger) *Handler {
	return &Handler{describer: describer, logger: logger}
}

type describeRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mime_type"`
}

// Describe generates a caption for a base64-encoded image. Failures surface
// as a user-visible message and never affect other state.
func (h *Handler) Describe(c echo.Context) error {
	var req describeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Image == "" || req.MimeType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image and mime_type are required"})
	}

	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image must be base64 encoded"})
	}

	if h.describer == nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": FailureMessage})
	}

	caption, err := h.describer.Describe(c.Request().Context(), data, req.MimeType)
	if err != nil {
		h.logger.WithError(err).Error("caption generation failed")
		return c.JSON(http.StatusBadGateway, echo.Map{"error": FailureMessage})
	}

	return c.JSON(http.StatusOK, echo.Map{"caption": caption})
}
