package model

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// SaleItem is one menu item's quantity within an order. Name and PriceAtSale
// are snapshots taken when the item is added; later catalog changes do not
// touch them. MenuItemID is a weak reference with no cascade.
type SaleItem struct {
	MenuItemID  string  `json:"menuItemId"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"priceAtSale"`
}

// Subtotal is the line's contribution to the order total.
func (i SaleItem) Subtotal() float64 {
	return i.PriceAtSale * float64(i.Quantity)
}

// Sale is one committed order. Append-only: never mutated or deleted once
// recorded. TotalAmount equals the sum of its line items at creation time.
type Sale struct {
	ID            string        `json:"id"`
	Timestamp     int64         `json:"timestamp"` // unix milliseconds
	Items         []SaleItem    `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"oneof=Cash Card"`
}

// NowMillis is the timestamp representation used across the data model.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
