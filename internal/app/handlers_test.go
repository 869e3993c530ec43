package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ecotupper/ecotupperapp/internal/catalog"
	"github.com/Ecotupper/ecotupperapp/internal/middleware"
	"github.com/Ecotupper/ecotupperapp/internal/orders"
	"github.com/Ecotupper/ecotupperapp/internal/session"
	"github.com/Ecotupper/ecotupperapp/internal/view"
)

func newTestHandler() *Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := catalog.NewSeededStore(0)
	composer := view.NewComposer(store, orders.NewSeededStore(0))
	return NewHandler(store, composer, nil, logger)
}

// do runs a handler behind the session middleware, the way the router wires
// it. The session id rides on the request header so calls share state.
func do(t *testing.T, m *session.Manager, fn echo.HandlerFunc, req *http.Request, paramID string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	require.NoError(t, middleware.SessionMiddleware(m)(fn)(c))
	return rec
}

func jsonRequest(method, target, body, sessionID string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAddToCartClampsRequestedQuantity(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	// Item 1 has a single unit left.
	rec := do(t, m, h.AddToCart, jsonRequest(http.MethodPost, "/cart/items", `{"item_id":1,"quantity":5}`, s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["item_count"])
}

func TestAddToCartDefaultsToOne(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.AddToCart, jsonRequest(http.MethodPost, "/cart/items", `{"item_id":2}`, s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["item_count"])
}

func TestAddToCartUnknownItem(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.AddToCart, jsonRequest(http.MethodPost, "/cart/items", `{"item_id":999,"quantity":1}`, s.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddToCartOutOfStock(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := catalog.NewStore([]catalog.Item{{ID: 1, Title: "agotado", Stock: 0}}, 0)
	h := NewHandler(store, view.NewComposer(store, orders.NewSeededStore(0)), nil, logger)
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.AddToCart, jsonRequest(http.MethodPost, "/cart/items", `{"item_id":1,"quantity":1}`, s.ID), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddToCartIncrementIsNotReclamped(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	// Item 2 has stock 5. Each request clamps individually, so repeated adds
	// push the line past the stock level.
	do(t, m, h.AddToCart, jsonRequest(http.MethodPost, "/cart/items", `{"item_id":2,"quantity":4}`, s.ID), "")
	rec := do(t, m, h.AddToCart, jsonRequest(http.MethodPost, "/cart/items", `{"item_id":2,"quantity":4}`, s.ID), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(8), decodeBody(t, rec)["item_count"])
}

func TestUpdateCartItem(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	do(t, m, h.AddToCart, jsonRequest(http.MethodPost, "/cart/items", `{"item_id":2,"quantity":2}`, s.ID), "")

	rec := do(t, m, h.UpdateCartItem, jsonRequest(http.MethodPatch, "/cart/items/2", `{"quantity":4}`, s.ID), "2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(4), decodeBody(t, rec)["item_count"])

	// Zero removes the line.
	rec = do(t, m, h.UpdateCartItem, jsonRequest(http.MethodPatch, "/cart/items/2", `{"quantity":0}`, s.ID), "2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeBody(t, rec)["item_count"])
}

func TestUpdateCartItemRejectsBadID(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.UpdateCartItem, jsonRequest(http.MethodPatch, "/cart/items/abc", `{"quantity":1}`, s.ID), "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCart(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	do(t, m, h.AddToCart, jsonRequest(http.MethodPost, "/cart/items", `{"item_id":2,"quantity":2}`, s.ID), "")

	rec := do(t, m, h.GetCart, jsonRequest(http.MethodGet, "/cart", "", s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["item_count"])
	assert.Equal(t, "12", body["subtotal"])
	assert.Equal(t, "0.5", body["service_fee"])
	assert.Equal(t, "12.5", body["total"])
}

func TestCheckout(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	do(t, m, h.AddToCart, jsonRequest(http.MethodPost, "/cart/items", `{"item_id":2,"quantity":2}`, s.ID), "")

	rec := do(t, m, h.Checkout, jsonRequest(http.MethodPost, "/cart/checkout", `{"email":"ana@example.com"}`, s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["item_count"])
	assert.Equal(t, "12.5", body["total"])

	// The cart is empty afterwards; no order is recorded anywhere.
	assert.Empty(t, s.Snapshot().CartLines)
	all, err := orders.NewSeededStore(0).GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCheckoutEmptyCart(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.Checkout, jsonRequest(http.MethodPost, "/cart/checkout", `{}`, s.ID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleFavorite(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.ToggleFavorite, jsonRequest(http.MethodPost, "/favorites/7", "", s.ID), "7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["favorite"])

	rec = do(t, m, h.ToggleFavorite, jsonRequest(http.MethodPost, "/favorites/7", "", s.ID), "7")
	assert.Equal(t, false, decodeBody(t, rec)["favorite"])
}

func TestGetFavorites(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.GetFavorites, jsonRequest(http.MethodGet, "/favorites", "", s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, []any{float64(2), float64(4)}, body["ids"])
	items := body["items"].([]any)
	require.Len(t, items, 2)
}

func TestNavigateUnknownScreen(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.Navigate, jsonRequest(http.MethodPost, "/navigate", `{"screen":"checkout"}`, s.ID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNavigateDetailWithNumericPayload(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.Navigate, jsonRequest(http.MethodPost, "/navigate", `{"screen":"detail","payload":3}`, s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	id, ok := s.Snapshot().Param.ItemID()
	require.True(t, ok)
	assert.Equal(t, 3, id)
}

func TestNavigateDetailWithBadPayloadFallsBackToHomeView(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.Navigate, jsonRequest(http.MethodPost, "/navigate", `{"screen":"detail","payload":"tres"}`, s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	// The transition happens, the parameter is dropped, and the composed
	// view falls back to the home sections.
	rec = do(t, m, h.GetView, jsonRequest(http.MethodGet, "/view", "", s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "home", body["screen"])
	assert.NotEmpty(t, body["sections"])
}

func TestBackPingPongs(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	do(t, m, h.Navigate, jsonRequest(http.MethodPost, "/navigate", `{"screen":"detail","payload":3}`, s.ID), "")
	do(t, m, h.Navigate, jsonRequest(http.MethodPost, "/navigate", `{"screen":"orders"}`, s.ID), "")

	rec := do(t, m, h.Back, jsonRequest(http.MethodPost, "/navigate/back", "", s.ID), "")
	assert.Equal(t, "detail", decodeBody(t, rec)["screen"])

	rec = do(t, m, h.Back, jsonRequest(http.MethodPost, "/navigate/back", "", s.ID), "")
	assert.Equal(t, "orders", decodeBody(t, rec)["screen"])
}

func TestGetViewAppliesSearchTerm(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.GetView, jsonRequest(http.MethodGet, "/view?q=maki", "", s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	sections := body["sections"].([]any)
	require.NotEmpty(t, sections)
	first := sections[0].(map[string]any)
	items := first["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]any)["id"])
}

func TestUpdateRole(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.UpdateRole, jsonRequest(http.MethodPut, "/profile/role", `{"role":"collaborator"}`, s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.RoleCollaborator, s.Role())

	rec = do(t, m, h.UpdateRole, jsonRequest(http.MethodPut, "/profile/role", `{"role":"admin"}`, s.ID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterCollaborator(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.RegisterCollaborator, jsonRequest(http.MethodPost, "/collaborator/register",
		`{"company_name":"Panadería Del Sol","email":"sol@example.com","business_type":"bakery"}`, s.ID), "")
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "collaborator", body["role"])
	assert.Equal(t, true, body["collaborator_registered"])
	assert.Equal(t, "profile", body["screen"])
}

func TestRegisterCollaboratorRequiresFields(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.RegisterCollaborator, jsonRequest(http.MethodPost, "/collaborator/register", `{"company_name":"Sol"}`, s.ID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveLocation(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.SaveLocation, jsonRequest(http.MethodPut, "/profile/location", `{"location":"Lavapiés"}`, s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Lavapiés", body["location"])
	assert.Equal(t, "home", body["screen"])
}

func TestInviteFriendRequiresEmail(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.InviteFriend, jsonRequest(http.MethodPost, "/invites", `{"message":"hola"}`, s.ID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, m, h.InviteFriend, jsonRequest(http.MethodPost, "/invites", `{"email":"ana@example.com"}`, s.ID), "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRecommendBusiness(t *testing.T) {
	h := newTestHandler()
	m := session.NewManager()
	s := m.Create()

	rec := do(t, m, h.RecommendBusiness, jsonRequest(http.MethodPost, "/recommendations", `{"business_name":"Horno Real"}`, s.ID), "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = do(t, m, h.RecommendBusiness, jsonRequest(http.MethodPost, "/recommendations", `{"contact":"x"}`, s.ID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
