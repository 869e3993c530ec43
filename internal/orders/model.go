package orders

import (
	"github.com/shopspring/decimal"

	"github.com/Ecotupper/ecotupperapp/internal/catalog"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Invoice struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	ServiceFee decimal.Decimal `json:"service_fee"`
	Total      decimal.Decimal `json:"total"`
}

// Order is a historical purchase. Orders are read-only: the app surfaces
// them but never creates or mutates them.
type Order struct {
	ID           string       `json:"id"`
	Item         catalog.Item `json:"item"`
	PurchaseDate string       `json:"purchase_date"`
	Status       string       `json:"status"`
	Invoice      Invoice      `json:"invoice"`
}
