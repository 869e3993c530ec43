package app

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ecotupper/ecotupperapp/internal/alerts"
	"github.com/Ecotupper/ecotupperapp/internal/middleware"
	"github.com/Ecotupper/ecotupperapp/internal/session"
)

func (h *Handler) GetProfile(c echo.Context) error {
	s := middleware.CurrentSession(c)
	st := s.Snapshot()

	return c.JSON(http.StatusOK, echo.Map{
		"session_id":              s.ID,
		"role":                    st.Role,
		"collaborator_registered": st.Collaborator,
		"location":                st.Location,
	})
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) UpdateRole(c echo.Context) error {
	s := middleware.CurrentSession(c)

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	role := session.Role(req.Role)
	if role != session.RoleClient && role != session.RoleCollaborator {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
	}

	s.SetRole(role)
	return c.JSON(http.StatusOK, echo.Map{"role": role})
}

type collaboratorRegistrationRequest struct {
	CompanyName  string `json:"company_name"`
	BusinessType string `json:"business_type"`
	CIF          string `json:"cif"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PickupTime   string `json:"pickup_time"`
	BankAccount  string `json:"bank_account"`
}

// RegisterCollaborator onboards the session as a collaborator: the role
// switches, the registration flag sticks and navigation lands on profile.
func (h *Handler) RegisterCollaborator(c echo.Context) error {
	s := middleware.CurrentSession(c)

	var req collaboratorRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.CompanyName == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "company_name and email are required"})
	}

	s.RegisterCollaborator()

	h.alerts.EnqueueCollaboratorWelcome(alerts.CollaboratorWelcomePayload{
		SessionID:    s.ID,
		BusinessName: req.CompanyName,
		Email:        req.Email,
		Envelope: alerts.EmailEnvelope{
			To:      req.Email,
			Subject: "Bienvenido a EcoTupper",
			Body:    "Tu negocio " + req.CompanyName + " ya puede publicar packs sorpresa.",
		},
	})

	st := s.Snapshot()
	return c.JSON(http.StatusCreated, echo.Map{
		"role":                    st.Role,
		"collaborator_registered": st.Collaborator,
		"screen":                  st.Screen,
	})
}

type saveLocationRequest struct {
	Location string `json:"location"`
}

// SaveLocation stores the pickup location; blank input keeps the previous
// value. Either way navigation returns home.
func (h *Handler) SaveLocation(c echo.Context) error {
	s := middleware.CurrentSession(c)

	var req saveLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	s.SaveLocation(req.Location)

	st := s.Snapshot()
	return c.JSON(http.StatusOK, echo.Map{"location": st.Location, "screen": st.Screen})
}

type inviteFriendRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) InviteFriend(c echo.Context) error {
	s := middleware.CurrentSession(c)

	var req inviteFriendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	h.alerts.EnqueueFriendInvite(alerts.FriendInvitePayload{
		SessionID: s.ID,
		Email:     req.Email,
		Message:   req.Message,
		Envelope: alerts.EmailEnvelope{
			To:      req.Email,
			Subject: "Te invitan a EcoTupper",
			Body:    req.Message,
		},
	})

	return c.JSON(http.StatusAccepted, echo.Map{"message": "invite queued"})
}

type recommendBusinessRequest struct {
	BusinessName string `json:"business_name"`
	Contact      string `json:"contact"`
	Reason       string `json:"reason"`
}

func (h *Handler) RecommendBusiness(c echo.Context) error {
	s := middleware.CurrentSession(c)

	var req recommendBusinessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.BusinessName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "business_name is required"})
	}

	h.alerts.EnqueueBusinessRecommendation(alerts.BusinessRecommendationPayload{
		SessionID:    s.ID,
		BusinessName: req.BusinessName,
		Contact:      req.Contact,
		Reason:       req.Reason,
		Envelope: alerts.EmailEnvelope{
			To:      req.Contact,
			Subject: "Un vecino recomienda " + req.BusinessName,
			Body:    req.Reason,
		},
	})

	return c.JSON(http.StatusAccepted, echo.Map{"message": "recommendation queued"})
}

// PublishedItems lists the collaborator's published packs. The seed data
// has no item-to-owner link, so the full catalog stands in for it.
func (h *Handler) PublishedItems(c echo.Context) error {
	items, err := h.catalog.GetAll(c.Request().Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to fetch published items")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch published items"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
