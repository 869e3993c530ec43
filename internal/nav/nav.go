// Package nav implements the client navigation state machine: which screen
// is active, its single contextual parameter, and one level of back history.
package nav

import "github.com/Ecotupper/ecotupperapp/internal/catalog"

type Screen string

const (
	ScreenHome                     Screen = "home"
	ScreenOrders                   Screen = "orders"
	ScreenPost                     Screen = "post"
	ScreenProfile                  Screen = "profile"
	ScreenDetail                   Screen = "detail"
	ScreenOrderDetail              Screen = "orderDetail"
	ScreenAllItems                 Screen = "allitems"
	ScreenFavorites                Screen = "favorites"
	ScreenPersonalInfo             Screen = "personalInfo"
	ScreenPaymentMethods           Screen = "paymentMethods"
	ScreenHelpCenter               Screen = "helpCenter"
	ScreenContactSupport           Screen = "contactSupport"
	ScreenPublishedItems           Screen = "publishedItems"
	ScreenCollaboratorRegistration Screen = "collaboratorRegistration"
	ScreenInviteFriends            Screen = "inviteFriends"
	ScreenRecommendBusiness        Screen = "recommendBusiness"
	ScreenCart                     Screen = "cart"
	ScreenSelectLocation           Screen = "selectLocation"
)

var screens = map[Screen]bool{
	ScreenHome: true, ScreenOrders: true, ScreenPost: true, ScreenProfile: true,
	ScreenDetail: true, ScreenOrderDetail: true, ScreenAllItems: true,
	ScreenFavorites: true, ScreenPersonalInfo: true, ScreenPaymentMethods: true,
	ScreenHelpCenter: true, ScreenContactSupport: true, ScreenPublishedItems: true,
	ScreenCollaboratorRegistration: true, ScreenInviteFriends: true,
	ScreenRecommendBusiness: true, ScreenCart: true, ScreenSelectLocation: true,
}

// ParseScreen validates a raw screen name.
func ParseScreen(s string) (Screen, bool) {
	if screens[Screen(s)] {
		return Screen(s), true
	}
	return "", false
}

type ParamKind int

const (
	ParamNone ParamKind = iota
	ParamItemID
	ParamOrderID
	ParamFilter
)

// Param is the tagged screen parameter: at most one of an item id, an order
// id or a catalog filter, depending on the screen.
type Param struct {
	kind    ParamKind
	itemID  int
	orderID string
	filter  catalog.Filter
}

func NoParam() Param                     { return Param{} }
func ItemIDParam(id int) Param           { return Param{kind: ParamItemID, itemID: id} }
func OrderIDParam(id string) Param       { return Param{kind: ParamOrderID, orderID: id} }
func FilterParam(f catalog.Filter) Param { return Param{kind: ParamFilter, filter: f} }

func (p Param) Kind() ParamKind { return p.kind }

func (p Param) ItemID() (int, bool) {
	return p.itemID, p.kind == ParamItemID
}

func (p Param) OrderID() (string, bool) {
	return p.orderID, p.kind == ParamOrderID
}

func (p Param) Filter() (catalog.Filter, bool) {
	return p.filter, p.kind == ParamFilter
}

// Controller tracks the current screen, its parameter and the previously
// shown screen. History is a single slot: two consecutive Back calls do not
// walk further than one step.
type Controller struct {
	current  Screen
	previous Screen
	param    Param
}

func NewController() *Controller {
	return &Controller{current: ScreenHome, previous: ScreenHome}
}

// Navigate switches to the target screen. The payload is accepted only when
// its type matches the target's expected parameter kind; a mismatched or
// invalid payload is silently dropped and the screen opens with no
// parameter, which the view layer resolves to its fallback.
func (c *Controller) Navigate(target Screen, payload any) {
	c.previous = c.current
	c.current = target
	c.param = NoParam()

	switch target {
	case ScreenDetail:
		if id, ok := payload.(int); ok {
			c.param = ItemIDParam(id)
		}
	case ScreenOrderDetail:
		if id, ok := payload.(string); ok {
			c.param = OrderIDParam(id)
		}
	case ScreenAllItems:
		if raw, ok := payload.(string); ok {
			if f, ok := catalog.ParseFilter(raw); ok {
				c.param = FilterParam(f)
			}
		}
	}
}

// Back returns to whatever screen the previous slot held at the last
// forward transition. The slot is not a stack.
func (c *Controller) Back() {
	c.Navigate(c.previous, nil)
}

func (c *Controller) Current() Screen  { return c.current }
func (c *Controller) Previous() Screen { return c.previous }
func (c *Controller) Param() Param     { return c.param }
