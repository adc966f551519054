package service

import (
	"errors"
	"fmt"

	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/store"
	"go-resto-backoffice/internal/ws"
	"go-resto-backoffice/pkg/validator"

	"github.com/google/uuid"
)

var ErrInventoryItemNotFound = errors.New("inventory item not found")

type InventoryService interface {
	GetInventory() []model.InventoryItem
	AddInventoryItem(req *model.InventoryItem) (*model.InventoryItem, error)
	AdjustQuantity(id string, delta float64) (*model.InventoryItem, error)
}

type inventoryService struct {
	store *store.Store
	wsHub *ws.Hub
}

func NewInventoryService(st *store.Store, hub *ws.Hub) InventoryService {
	return &inventoryService{store: st, wsHub: hub}
}

func (s *inventoryService) GetInventory() []model.InventoryItem {
	return s.store.Inventory()
}

func (s *inventoryService) AddInventoryItem(req *model.InventoryItem) (*model.InventoryItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.ID = uuid.NewString()
	item := *req

	err := s.store.MutateInventory(func(inventory []model.InventoryItem) []model.InventoryItem {
		return append(inventory, item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AdjustQuantity applies a signed delta to one item's stock level, flooring
// at zero. The item is never removed by decrementing.
func (s *inventoryService) AdjustQuantity(id string, delta float64) (*model.InventoryItem, error) {
	var updated *model.InventoryItem

	err := s.store.MutateInventory(func(inventory []model.InventoryItem) []model.InventoryItem {
		for i := range inventory {
			if inventory[i].ID != id {
				continue
			}
			qty := inventory[i].Quantity + delta
			if qty < 0 {
				qty = 0
			}
			inventory[i].Quantity = qty
			item := inventory[i]
			updated = &item
			break
		}
		return inventory
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrInventoryItemNotFound
	}

	payload := map[string]interface{}{
		"type": "stock_update",
		"item": map[string]interface{}{
			"id":       updated.ID,
			"name":     updated.Name,
			"quantity": updated.Quantity,
			"unit":     updated.Unit,
		},
		"low_stock": updated.LowStock(),
	}
	if updated.LowStock() {
		payload["message"] = fmt.Sprintf("'%s' is low on stock (%.0f %s left)", updated.Name, updated.Quantity, updated.Unit)
	}
	s.wsHub.Publish(payload)

	return updated, nil
}
