// Package session holds the per-client application state: cart, favorites,
// navigation and profile. Every mutation goes through a session method and
// runs under the session lock, so actions within a session never interleave.
package session

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ecotupper/ecotupperapp/internal/cart"
	"github.com/Ecotupper/ecotupperapp/internal/catalog"
	"github.com/Ecotupper/ecotupperapp/internal/nav"
)

type Role string

const (
	RoleClient       Role = "client"
	RoleCollaborator Role = "collaborator"
)

const defaultLocation = "Madrid Centro"

// defaultFavorites pre-marks the seeded favorites in every new session.
var defaultFavorites = []int{2, 4}

type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	cart         *cart.Cart
	favorites    map[int]bool
	nav          *nav.Controller
	role         Role
	collaborator bool
	location     string
}

func newSession(id string) *Session {
	favorites := make(map[int]bool, len(defaultFavorites))
	for _, id := range defaultFavorites {
		favorites[id] = true
	}
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		cart:      cart.New(),
		favorites: favorites,
		nav:       nav.NewController(),
		role:      RoleClient,
		location:  defaultLocation,
	}
}

// State is an immutable snapshot of a session, consumed by the view layer.
type State struct {
	Screen       nav.Screen
	Previous     nav.Screen
	Param        nav.Param
	Role         Role
	Collaborator bool
	Location     string
	FavoriteIDs  []int
	CartLines    []cart.Line
	CartCount    int
	CartSubtotal decimal.Decimal
	CartTotal    decimal.Decimal
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return State{
		Screen:       s.nav.Current(),
		Previous:     s.nav.Previous(),
		Param:        s.nav.Param(),
		Role:         s.role,
		Collaborator: s.collaborator,
		Location:     s.location,
		FavoriteIDs:  ids,
		CartLines:    s.cart.Lines(),
		CartCount:    s.cart.TotalItemCount(),
		CartSubtotal: s.cart.Subtotal(),
		CartTotal:    s.cart.Total(),
	}
}

func (s *Session) Navigate(target nav.Screen, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Navigate(target, payload)
}

func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Back()
}

// ToggleFavorite flips membership for the id and reports whether the item
// is a favorite afterwards. Stale ids are tolerated.
func (s *Session) ToggleFavorite(itemID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[itemID] {
		delete(s.favorites, itemID)
		return false
	}
	s.favorites[itemID] = true
	return true
}

func (s *Session) IsFavorite(itemID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[itemID]
}

func (s *Session) AddToCart(item catalog.Item, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item, qty)
}

func (s *Session) UpdateCartQuantity(itemID, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(itemID, qty)
}

func (s *Session) RemoveCartItem(itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(itemID)
}

// Checkout clears the cart and returns the totals that were charged.
// Checkout does not create an order: order history and the cart are
// disconnected.
func (s *Session) Checkout() (subtotal, total decimal.Decimal, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal = s.cart.Subtotal()
	total = s.cart.Total()
	count = s.cart.TotalItemCount()
	s.cart.Clear()
	return subtotal, total, count
}

func (s *Session) Role() Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

func (s *Session) SetRole(role Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
}

// RegisterCollaborator marks the session as an onboarded collaborator,
// switches the role and lands on the profile screen.
func (s *Session) RegisterCollaborator() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collaborator = true
	s.role = RoleCollaborator
	s.nav.Navigate(nav.ScreenProfile, nil)
}

func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// SaveLocation stores the trimmed pickup location, ignoring empty input,
// and navigates home.
func (s *Session) SaveLocation(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if trimmed := strings.TrimSpace(location); trimmed != "" {
		s.location = trimmed
	}
	s.nav.Navigate(nav.ScreenHome, nil)
}
