// Package view composes a render description from the current session state
// and the stores. It owns no state of its own.
package view

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Ecotupper/ecotupperapp/internal/cart"
	"github.com/Ecotupper/ecotupperapp/internal/catalog"
	"github.com/Ecotupper/ecotupperapp/internal/nav"
	"github.com/Ecotupper/ecotupperapp/internal/orders"
	"github.com/Ecotupper/ecotupperapp/internal/session"
)

// Section is one home carousel: a shaped slice of the catalog with its
// display title.
type Section struct {
	Filter catalog.Filter `json:"filter"`
	Title  string         `json:"title"`
	Items  []catalog.Item `json:"items"`
}

// Descriptor tells a client what to render. Screen is the screen actually
// resolved after fallbacks, which may differ from the navigated one.
type Descriptor struct {
	Screen        nav.Screen      `json:"screen"`
	Title         string          `json:"title,omitempty"`
	Role          session.Role    `json:"role"`
	Location      string          `json:"location"`
	CartItemCount int             `json:"cart_item_count"`
	Collaborator  bool            `json:"collaborator_registered"`
	NotFound      bool            `json:"not_found,omitempty"`
	Sections      []Section       `json:"sections,omitempty"`
	Items         []catalog.Item  `json:"items,omitempty"`
	Filter        catalog.Filter  `json:"filter,omitempty"`
	Item          *catalog.Item   `json:"item,omitempty"`
	IsFavorite    bool            `json:"is_favorite,omitempty"`
	Order         *orders.Order   `json:"order,omitempty"`
	Orders        []orders.Order  `json:"orders,omitempty"`
	CartLines     []cart.Line     `json:"cart_lines,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ServiceFee    decimal.Decimal `json:"service_fee"`
	Total         decimal.Decimal `json:"total"`
}

var filterTitles = map[catalog.Filter]string{
	catalog.FilterRecent:     "Recién Añadido",
	catalog.FilterNearby:     "Cerca de Ti",
	catalog.FilterPrepared:   "Preparados",
	catalog.FilterEndingSoon: "Apunto de acabar",
	catalog.FilterBakery:     "Bollería y panadería",
}

// FilterTitle is the display title for a shaped view.
func FilterTitle(f catalog.Filter) string {
	if t, ok := filterTitles[f]; ok {
		return t
	}
	return "Todos los artículos"
}

// Composer resolves session state into screen descriptors against the
// catalog and order stores.
type Composer struct {
	catalog *catalog.Store
	orders  *orders.Store
}

func NewComposer(catalogStore *catalog.Store, orderStore *orders.Store) *Composer {
	return &Composer{catalog: catalogStore, orders: orderStore}
}

// Compose maps the state to a descriptor. A screen whose parameter is
// absent falls back: detail and allitems to home, orderDetail to orders.
// An absent record renders as a not-found placeholder, never an error.
func (v *Composer) Compose(ctx context.Context, st session.State, searchTerm string) (Descriptor, error) {
	d := Descriptor{
		Screen:        st.Screen,
		Role:          st.Role,
		Location:      st.Location,
		CartItemCount: st.CartCount,
		Collaborator:  st.Collaborator,
	}

	switch st.Screen {
	case nav.ScreenDetail:
		itemID, ok := st.Param.ItemID()
		if !ok {
			return v.composeHome(ctx, d, searchTerm)
		}
		item, err := v.catalog.GetByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, catalog.ErrItemNotFound) {
				d.NotFound = true
				return d, nil
			}
			return Descriptor{}, err
		}
		d.Item = &item
		for _, id := range st.FavoriteIDs {
			if id == itemID {
				d.IsFavorite = true
			}
		}
		return d, nil

	case nav.ScreenOrderDetail:
		orderID, ok := st.Param.OrderID()
		if !ok {
			return v.composeOrders(ctx, withScreen(d, nav.ScreenOrders))
		}
		order, err := v.orders.GetByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, orders.ErrOrderNotFound) {
				d.NotFound = true
				return d, nil
			}
			return Descriptor{}, err
		}
		d.Order = &order
		return d, nil

	case nav.ScreenAllItems:
		filter, ok := st.Param.Filter()
		if !ok {
			return v.composeHome(ctx, d, searchTerm)
		}
		items, err := v.catalog.GetAll(ctx)
		if err != nil {
			return Descriptor{}, err
		}
		d.Filter = filter
		d.Title = FilterTitle(filter)
		d.Items = catalog.View(catalog.Search(items, searchTerm), filter)
		return d, nil

	case nav.ScreenOrders:
		return v.composeOrders(ctx, d)

	case nav.ScreenFavorites:
		items, err := v.catalog.GetAll(ctx)
		if err != nil {
			return Descriptor{}, err
		}
		favorite := make(map[int]bool, len(st.FavoriteIDs))
		for _, id := range st.FavoriteIDs {
			favorite[id] = true
		}
		var kept []catalog.Item
		for _, item := range items {
			if favorite[item.ID] {
				kept = append(kept, item)
			}
		}
		d.Items = kept
		return d, nil

	case nav.ScreenCart:
		d.CartLines = st.CartLines
		d.Subtotal = st.CartSubtotal
		d.ServiceFee = cart.ServiceFee
		d.Total = st.CartTotal
		return d, nil

	case nav.ScreenHome:
		return v.composeHome(ctx, d, searchTerm)

	case nav.ScreenPost, nav.ScreenProfile, nav.ScreenPersonalInfo,
		nav.ScreenPaymentMethods, nav.ScreenHelpCenter, nav.ScreenContactSupport,
		nav.ScreenPublishedItems, nav.ScreenCollaboratorRegistration,
		nav.ScreenInviteFriends, nav.ScreenRecommendBusiness, nav.ScreenSelectLocation:
		return d, nil

	default:
		return v.composeHome(ctx, withScreen(d, nav.ScreenHome), searchTerm)
	}
}

func (v *Composer) composeHome(ctx context.Context, d Descriptor, searchTerm string) (Descriptor, error) {
	items, err := v.catalog.GetAll(ctx)
	if err != nil {
		return Descriptor{}, err
	}
	matched := catalog.Search(items, searchTerm)

	d.Screen = nav.ScreenHome
	for _, f := range []catalog.Filter{
		catalog.FilterRecent,
		catalog.FilterNearby,
		catalog.FilterPrepared,
		catalog.FilterEndingSoon,
		catalog.FilterBakery,
	} {
		shaped := catalog.View(matched, f)
		if len(shaped) == 0 {
			continue
		}
		d.Sections = append(d.Sections, Section{Filter: f, Title: FilterTitle(f), Items: shaped})
	}
	return d, nil
}

func (v *Composer) composeOrders(ctx context.Context, d Descriptor) (Descriptor, error) {
	all, err := v.orders.GetAll(ctx)
	if err != nil {
		return Descriptor{}, err
	}
	d.Orders = all
	return d, nil
}

func withScreen(d Descriptor, s nav.Screen) Descriptor {
	d.Screen = s
	return d
}
