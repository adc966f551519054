package service

import (
	"fmt"
	"sync"

	"go-resto-backoffice/internal/cart"
	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/store"
	"go-resto-backoffice/internal/ws"
)

// OrderView is the current in-progress order as shown on the sales screen.
type OrderView struct {
	Items []model.SaleItem `json:"items"`
	Total float64          `json:"total"`
}

type SalesService interface {
	GetSales() []model.Sale
	GetOrder() OrderView
	AddToOrder(menuItemID string) (OrderView, error)
	AdjustOrderItem(menuItemID string, delta int) OrderView
	ClearOrder()
	Checkout(method model.PaymentMethod) (*model.Sale, error)
}

// salesService owns the register's single in-progress order. The accumulator
// itself is not concurrency-safe, so every access goes through the mutex.
type salesService struct {
	store *store.Store
	wsHub *ws.Hub
	mu    sync.Mutex
	order *cart.Cart
}

func NewSalesService(st *store.Store, hub *ws.Hub) SalesService {
	return &salesService{store: st, wsHub: hub, order: cart.New()}
}

func (s *salesService) GetSales() []model.Sale {
	return s.store.Sales()
}

func (s *salesService) GetOrder() OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return OrderView{Items: s.order.Items(), Total: s.order.Total()}
}

// AddToOrder resolves the menu item and adds one of it to the order. The
// item's current price is frozen onto the line at this moment.
func (s *salesService) AddToOrder(menuItemID string) (OrderView, error) {
	var found *model.MenuItem
	for _, item := range s.store.Menu() {
		if item.ID == menuItemID {
			found = &item
			break
		}
	}
	if found == nil {
		return OrderView{}, ErrMenuItemNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.AddItem(*found)
	return OrderView{Items: s.order.Items(), Total: s.order.Total()}, nil
}

func (s *salesService) AdjustOrderItem(menuItemID string, delta int) OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.AdjustQuantity(menuItemID, delta)
	return OrderView{Items: s.order.Items(), Total: s.order.Total()}
}

func (s *salesService) ClearOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Clear()
}

// Checkout commits the in-progress order as a Sale and appends it to the
// store, newest first. Checkout does not touch inventory: stock levels are
// tracked independently of sales.
func (s *salesService) Checkout(method model.PaymentMethod) (*model.Sale, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("unknown payment method %q", method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sale, err := s.order.Checkout(method)
	if err != nil {
		return nil, err
	}

	err = s.store.MutateSales(func(sales []model.Sale) []model.Sale {
		return append([]model.Sale{*sale}, sales...)
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(map[string]interface{}{
		"type": "sale_completed",
		"sale": map[string]interface{}{
			"id":             sale.ID,
			"total_amount":   sale.TotalAmount,
			"payment_method": sale.PaymentMethod,
			"item_count":     len(sale.Items),
		},
		"message": fmt.Sprintf("Sale of $%.2f completed (%s)", sale.TotalAmount, sale.PaymentMethod),
	})

	return sale, nil
}
