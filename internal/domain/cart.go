package domain

import "github.com/shopspring/decimal"

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is unit price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart keeps at most one line per product, in first-added order.
// Lines never hold a quantity below 1.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) index(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add increments the product's line or appends a new one with quantity 1.
func (c *Cart) Add(p Product) {
	if i := c.index(p.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// Remove drops the product's line. It reports whether a line was removed.
func (c *Cart) Remove(productID string) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// SetQuantity replaces the quantity of an existing line. A quantity <= 0
// removes the line; a missing line is left missing.
func (c *Cart) SetQuantity(productID string, qty int) bool {
	if qty <= 0 {
		return c.Remove(productID)
	}
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.Lines[i].Quantity = qty
	return true
}

// Quantity reads 0 for products without a line.
func (c *Cart) Quantity(productID string) int {
	if i := c.index(productID); i >= 0 {
		return c.Lines[i].Quantity
	}
	return 0
}

func (c *Cart) Len() int { return len(c.Lines) }

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Clone returns a cart that shares no line storage with c.
func (c *Cart) Clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
