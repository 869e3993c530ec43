package orders

import (
	"github.com/shopspring/decimal"

	"github.com/Ecotupper/ecotupperapp/internal/catalog"
)

// SeedOrders returns the built-in order history. Item snapshots come from
// the seeded catalog.
func SeedOrders() []Order {
	items := catalog.SeedItems()
	byID := make(map[int]catalog.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	fee := decimal.NewFromFloat(0.50)
	invoice := func(subtotal float64) Invoice {
		sub := decimal.NewFromFloat(subtotal)
		return Invoice{Subtotal: sub, ServiceFee: fee, Total: sub.Add(fee)}
	}

	return []Order{
		{ID: "ORD001", Item: byID[2], PurchaseDate: "2024-07-29", Status: StatusCompleted, Invoice: invoice(6.00)},
		{ID: "ORD002", Item: byID[4], PurchaseDate: "2024-07-30", Status: StatusActive, Invoice: invoice(4.50)},
		{ID: "ORD003", Item: byID[1], PurchaseDate: "2024-07-28", Status: StatusCancelled, Invoice: invoice(2.50)},
	}
}
