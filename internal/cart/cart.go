// Package cart implements the shopping cart: one line per item id, quantity
// operations, and decimal totals with a fixed service fee.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/Ecotupper/ecotupperapp/internal/catalog"
)

// ServiceFee is the fixed additive charge applied at checkout, independent
// of cart contents.
var ServiceFee = decimal.NewFromFloat(0.50)

// Line pairs an item snapshot with its quantity. A line's quantity is
// always positive while the line exists.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// Cart keeps lines in insertion order. All operations are total functions:
// invalid input is normalized, never rejected.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add increments the existing line for the item or inserts a new one. The
// increment is not clamped against stock: callers clamp the requested
// quantity before calling.
func (c *Cart) Add(item catalog.Item, qty int) {
	if qty <= 0 {
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: qty})
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// or less removes the line. An absent id is a no-op: no line materializes.
func (c *Cart) UpdateQuantity(itemID, qty int) {
	if qty <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the line for the item if present.
func (c *Cart) Remove(itemID int) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Invoked on checkout completion.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItemCount is the sum of all line quantities.
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return subtotal
}

// Total is the subtotal plus the service fee.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(ServiceFee)
}
