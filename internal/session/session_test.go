package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ecotupper/ecotupperapp/internal/catalog"
	"github.com/Ecotupper/ecotupperapp/internal/nav"
)

func TestNewSessionDefaults(t *testing.T) {
	s := NewManager().Create()
	st := s.Snapshot()

	assert.Equal(t, nav.ScreenHome, st.Screen)
	assert.Equal(t, RoleClient, st.Role)
	assert.False(t, st.Collaborator)
	assert.Equal(t, "Madrid Centro", st.Location)
	assert.Equal(t, []int{2, 4}, st.FavoriteIDs)
	assert.Empty(t, st.CartLines)
}

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	s := NewManager().Create()

	require.False(t, s.IsFavorite(7))
	assert.True(t, s.ToggleFavorite(7))
	assert.True(t, s.IsFavorite(7))
	assert.False(t, s.ToggleFavorite(7))
	assert.False(t, s.IsFavorite(7))
}

func TestCheckoutClearsCartAndReportsTotals(t *testing.T) {
	s := NewManager().Create()
	s.AddToCart(catalog.Item{ID: 2, Price: decimal.RequireFromString("6.00"), Stock: 5}, 2)

	subtotal, total, count := s.Checkout()
	assert.Equal(t, 2, count)
	assert.True(t, subtotal.Equal(decimal.RequireFromString("12.00")))
	assert.True(t, total.Equal(decimal.RequireFromString("12.50")))
	assert.Empty(t, s.Snapshot().CartLines)
}

func TestRegisterCollaborator(t *testing.T) {
	s := NewManager().Create()
	s.RegisterCollaborator()

	st := s.Snapshot()
	assert.Equal(t, RoleCollaborator, st.Role)
	assert.True(t, st.Collaborator)
	assert.Equal(t, nav.ScreenProfile, st.Screen)
}

func TestSaveLocation(t *testing.T) {
	s := NewManager().Create()

	s.SaveLocation("  Lavapiés  ")
	st := s.Snapshot()
	assert.Equal(t, "Lavapiés", st.Location)
	assert.Equal(t, nav.ScreenHome, st.Screen)

	// Blank input keeps the previous value but still navigates home.
	s.Navigate(nav.ScreenSelectLocation, nil)
	s.SaveLocation("   ")
	st = s.Snapshot()
	assert.Equal(t, "Lavapiés", st.Location)
	assert.Equal(t, nav.ScreenHome, st.Screen)
}

func TestManagerResolve(t *testing.T) {
	m := NewManager()

	created := m.Resolve("")
	require.NotNil(t, created)

	same := m.Resolve(created.ID)
	assert.Same(t, created, same)

	other := m.Resolve("not-a-session")
	assert.NotEqual(t, created.ID, other.ID)
	assert.Equal(t, 2, m.Count())
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewManager().Create()
	st := s.Snapshot()

	s.ToggleFavorite(7)
	s.Navigate(nav.ScreenCart, nil)

	assert.Equal(t, []int{2, 4}, st.FavoriteIDs)
	assert.Equal(t, nav.ScreenHome, st.Screen)
}
