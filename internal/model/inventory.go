package model

// InventoryItem tracks one stocked ingredient. Quantity is adjusted by signed
// deltas and clamped at zero; items are never deleted.
type InventoryItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	Unit         string  `json:"unit"` // free-text label: lbs, pcs, gallons
	MinThreshold float64 `json:"minThreshold" validate:"gte=0"`
}

// LowStock reports whether the item has fallen to or below its alert
// threshold. Equality counts as low.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinThreshold
}
