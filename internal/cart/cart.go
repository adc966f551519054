// Package cart builds one in-progress sale. It is purely in-memory: nothing
// touches durable storage until the committed Sale is handed to the store.
package cart

import (
	"errors"

	"go-resto-backoffice/internal/model"

	"github.com/google/uuid"
)

// ErrEmptyOrder is returned by Checkout when there is nothing to commit.
// The cart and store are left untouched.
var ErrEmptyOrder = errors.New("order is empty")

// Cart accumulates line items for the current order. Not safe for concurrent
// use; callers serialize access.
type Cart struct {
	items []model.SaleItem
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges into an existing line for the same menu item, or appends a
// new line with quantity 1. PriceAtSale is captured now and never re-read,
// so later catalog price changes cannot alter the order.
func (c *Cart) AddItem(item model.MenuItem) {
	for i := range c.items {
		if c.items[i].MenuItemID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, model.SaleItem{
		MenuItemID:  item.ID,
		Name:        item.Name,
		Quantity:    1,
		PriceAtSale: item.Price,
	})
}

// AdjustQuantity applies a signed delta, flooring at zero. A line that
// reaches zero is removed entirely rather than left as a zero-quantity row.
// An unknown menu item id is a no-op.
func (c *Cart) AdjustQuantity(menuItemID string, delta int) {
	for i := range c.items {
		if c.items[i].MenuItemID != menuItemID {
			continue
		}
		qty := c.items[i].Quantity + delta
		if qty <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = qty
		}
		return
	}
}

// Total recomputes the order total from the current line items on every call.
// It is never cached across mutations.
func (c *Cart) Total() float64 {
	var sum float64
	for _, item := range c.items {
		sum += item.Subtotal()
	}
	return sum
}

// Items returns a snapshot copy of the current line items.
func (c *Cart) Items() []model.SaleItem {
	return append([]model.SaleItem(nil), c.items...)
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Clear discards the in-progress order.
func (c *Cart) Clear() {
	c.items = nil
}

// Checkout commits the order: it builds a Sale with a fresh id, the current
// timestamp, a snapshot of the line items and the recomputed total, then
// resets the cart. An empty order (zero lines or zero total) returns
// ErrEmptyOrder with no effect.
func (c *Cart) Checkout(method model.PaymentMethod) (*model.Sale, error) {
	if len(c.items) == 0 || c.Total() == 0 {
		return nil, ErrEmptyOrder
	}
	sale := &model.Sale{
		ID:            uuid.NewString(),
		Timestamp:     model.NowMillis(),
		Items:         c.Items(),
		TotalAmount:   c.Total(),
		PaymentMethod: method,
	}
	c.items = nil
	return sale, nil
}
