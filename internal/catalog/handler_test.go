package catalog

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHandler(NewSeededStore(0), logger)
}

func listItems(t *testing.T, target string) []map[string]any {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)
	require.NoError(t, newTestHandler().ListItems(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Items
}

func TestListItems(t *testing.T) {
	assert.Len(t, listItems(t, "/catalog/items"), 7)
}

func TestListItemsWithSearch(t *testing.T) {
	items := listItems(t, "/catalog/items?q=maki")
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0]["id"])
}

func TestListItemsWithView(t *testing.T) {
	items := listItems(t, "/catalog/items?view=bakery")
	require.Len(t, items, 3)
	assert.Equal(t, float64(1), items[0]["id"])
}

func TestListItemsDropsUnknownView(t *testing.T) {
	assert.Len(t, listItems(t, "/catalog/items?view=cheapest"), 7)
}

func TestListItemsSearchWithoutMatchIsEmptyList(t *testing.T) {
	assert.Empty(t, listItems(t, "/catalog/items?q=pizza"))
}

func TestGetItem(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/catalog/items/3", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, h.GetItem(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Item Item `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Caja de Verduras Orgánicas", body.Item.Title)
}

func TestGetItemBadID(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/catalog/items/abc", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.GetItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetItemNotFound(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/catalog/items/999", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("999")
	require.NoError(t, h.GetItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
