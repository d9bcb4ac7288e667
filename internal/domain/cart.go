package domain

import "github.com/shopspring/decimal"

// TaxRate is the flat rate applied to the cart subtotal at checkout.
var TaxRate = decimal.RequireFromString("0.10")

// CartLine is a single title in the cart with its quantity.
type CartLine struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// LineTotal returns the line's price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Book.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the shopping cart aggregate. ItemCount and Total are derived
// and recomputed after every mutation, never adjusted incrementally.
// Lines keep insertion order.
//
// Cart is not safe for concurrent use; callers serialize access.
type Cart struct {
	Lines     []CartLine      `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

// NewCart returns an empty cart with zeroed totals.
func NewCart() *Cart {
	return &Cart{Total: decimal.Zero}
}

// AddItem adds quantity copies of the book. An existing line for the
// same book is incremented instead of duplicated. Quantities below one
// are ignored and leave the cart untouched.
func (c *Cart) AddItem(book Book, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Book.ID == book.ID {
			c.Lines[i].Quantity += quantity
			c.recompute()
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Book: book, Quantity: quantity})
	c.recompute()
}

// RemoveItem removes the book's line entirely, regardless of quantity.
// Removing an absent book is a no-op.
func (c *Cart) RemoveItem(bookID int) {
	for i := range c.Lines {
		if c.Lines[i].Book.ID == bookID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.recompute()
			return
		}
	}
}

// SetQuantity replaces the quantity of the book's line. A quantity of
// zero or below removes the line. Setting an absent book is a no-op.
func (c *Cart) SetQuantity(bookID, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].Book.ID == bookID {
			if quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			} else {
				c.Lines[i].Quantity = quantity
			}
			c.recompute()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
	c.recompute()
}

// Contains reports whether the book has a line in the cart.
func (c *Cart) Contains(bookID int) bool {
	for i := range c.Lines {
		if c.Lines[i].Book.ID == bookID {
			return true
		}
	}
	return false
}

// QuantityOf returns the quantity of the book's line, or zero when absent.
func (c *Cart) QuantityOf(bookID int) int {
	for i := range c.Lines {
		if c.Lines[i].Book.ID == bookID {
			return c.Lines[i].Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Summarize computes the order totals for the current cart contents.
func (c *Cart) Summarize() OrderSummary {
	subtotal := c.Total
	tax := subtotal.Mul(TaxRate)
	return OrderSummary{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
		ItemCount:  c.ItemCount,
	}
}

func (c *Cart) recompute() {
	count := 0
	total := decimal.Zero
	for i := range c.Lines {
		count += c.Lines[i].Quantity
		total = total.Add(c.Lines[i].LineTotal())
	}
	c.ItemCount = count
	c.Total = total
}

// OrderSummary is the checkout breakdown for a cart.
type OrderSummary struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	ItemCount  int             `json:"item_count"`
}

// Order is a completed checkout persisted for order history.
type Order struct {
	Record
	UserID     string          `json:"user_id"`
	ReceiptID  string          `json:"receipt_id"`
	Lines      []CartLine      `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	ItemCount  int             `json:"item_count"`
}
