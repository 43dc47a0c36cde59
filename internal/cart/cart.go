// Package cart implements the in-session shopping cart and its pricing
// math. A Cart belongs to a single session and is never shared, so no
// locking is done here. Totals are always recomputed from the lines;
// nothing derived is stored.
package cart

import (
	"math"

	"github.com/kinus-bit/bookStore/internal/model"
)

// TaxRate is the flat sales tax applied to the subtotal at checkout.
const TaxRate = 0.08

// Line is one book-plus-quantity entry. Quantity is always >= 1 while the
// line is in the cart; operations that would drop it to zero remove the
// line instead.
type Line struct {
	Book     model.Book `json:"book"`
	Quantity int        `json:"quantity"`
}

// Summary holds the priced breakdown of a cart. Tax is rounded to cents;
// the subtotal is left unrounded until this final step so rounding error
// never compounds across lines.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Cart is an insertion-ordered collection of lines. Order matters only
// for display; totals are order-independent.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart { return &Cart{} }

// Lines returns the lines in insertion order. The slice is a copy;
// mutating it does not affect the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// AddItem puts a book into the cart. If a line for the book already
// exists its quantity is incremented by one; otherwise a new line with
// quantity 1 is appended.
func (c *Cart) AddItem(b model.Book) {
	for i := range c.lines {
		if c.lines[i].Book.ID == b.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Book: b, Quantity: 1})
}

// UpdateQuantity sets the quantity of the line for bookID. A quantity of
// zero or less removes the line entirely: a quantity is never persisted
// as zero or negative. Updating a book that is not in the cart is a
// silent no-op.
func (c *Cart) UpdateQuantity(bookID uint64, quantity int) {
	for i := range c.lines {
		if c.lines[i].Book.ID != bookID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
		c.lines[i].Quantity = quantity
		return
	}
}

// RemoveItem removes the line for bookID regardless of quantity.
// Removing a book that is not in the cart is a silent no-op.
func (c *Cart) RemoveItem(bookID uint64) {
	for i := range c.lines {
		if c.lines[i].Book.ID == bookID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() { c.lines = nil }

// TotalItems returns the sum of all line quantities, 0 for an empty cart.
// Used for badge counts.
func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice returns the subtotal: sum of quantity times unit price over
// all lines, 0 for an empty cart.
func (c *Cart) TotalPrice() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += float64(l.Quantity) * l.Book.Price
	}
	return sum
}

// OrderSummary prices the cart for display: tax is the subtotal times
// TaxRate rounded to cents, total is subtotal plus tax.
func (c *Cart) OrderSummary() Summary {
	subtotal := c.TotalPrice()
	tax := round2(subtotal * TaxRate)
	return Summary{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
