package service

import (
	"testing"

	"go-resto-backoffice/internal/cart"
	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/store"
	"go-resto-backoffice/internal/ws"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	st := store.New(db)
	require.NoError(t, st.Load())
	return st
}

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func TestSalesService_AddToOrder_UnknownMenuItem(t *testing.T) {
	svc := NewSalesService(newTestStore(t), newTestHub())

	_, err := svc.AddToOrder("does-not-exist")
	require.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestSalesService_Checkout_RecordsExactlyOneSale(t *testing.T) {
	st := newTestStore(t)
	svc := NewSalesService(st, newTestHub())

	// Seed menu: c1 = Chicken Tikka Masala @ 19.95, b1 = Plain Naan @ 3.50.
	_, err := svc.AddToOrder("c1")
	require.NoError(t, err)
	_, err = svc.AddToOrder("c1")
	require.NoError(t, err)
	_, err = svc.AddToOrder("b1")
	require.NoError(t, err)

	order := svc.GetOrder()
	require.Len(t, order.Items, 2)
	expectedTotal := order.Total

	sale, err := svc.Checkout(model.PaymentCard)
	require.NoError(t, err)

	sales := st.Sales()
	require.Len(t, sales, 1)
	assert.Equal(t, sale.ID, sales[0].ID)
	assert.InDelta(t, expectedTotal, sales[0].TotalAmount, 0.001)
	assert.Equal(t, model.PaymentCard, sales[0].PaymentMethod)

	// Cart resets to empty.
	after := svc.GetOrder()
	assert.Empty(t, after.Items)
	assert.Equal(t, 0.0, after.Total)
}

func TestSalesService_Checkout_EmptyOrderLeavesStoreUntouched(t *testing.T) {
	st := newTestStore(t)
	svc := NewSalesService(st, newTestHub())

	_, err := svc.Checkout(model.PaymentCash)
	require.ErrorIs(t, err, cart.ErrEmptyOrder)
	assert.Empty(t, st.Sales())
}

func TestSalesService_Checkout_RejectsUnknownPaymentMethod(t *testing.T) {
	st := newTestStore(t)
	svc := NewSalesService(st, newTestHub())

	_, err := svc.AddToOrder("b1")
	require.NoError(t, err)

	_, err = svc.Checkout("Cheque")
	require.Error(t, err)
	assert.Empty(t, st.Sales())

	// The order is still intact.
	assert.Len(t, svc.GetOrder().Items, 1)
}

func TestSalesService_CommittedSaleIsImmuneToCatalogChanges(t *testing.T) {
	st := newTestStore(t)
	svc := NewSalesService(st, newTestHub())
	catalog := NewCatalogService(st)

	_, err := svc.AddToOrder("b1") // Plain Naan @ 3.50
	require.NoError(t, err)

	sale, err := svc.Checkout(model.PaymentCash)
	require.NoError(t, err)
	require.InDelta(t, 3.50, sale.TotalAmount, 0.001)

	// Delete the menu item after the sale committed.
	require.NoError(t, catalog.DeleteMenuItem("b1"))

	sales := st.Sales()
	require.Len(t, sales, 1)
	assert.InDelta(t, 3.50, sales[0].TotalAmount, 0.001)
	require.Len(t, sales[0].Items, 1)
	assert.Equal(t, "Plain Naan", sales[0].Items[0].Name)
	assert.InDelta(t, 3.50, sales[0].Items[0].PriceAtSale, 0.001)
}

func TestSalesService_ScenarioFromSalesScreen(t *testing.T) {
	st := newTestStore(t)
	svc := NewSalesService(st, newTestHub())

	// Item priced $10 added twice, decremented once: one line, qty 1, $10.
	catalog := NewCatalogService(st)
	created, err := catalog.AddMenuItem(&model.MenuItem{
		Name: "Item X", Price: 10.00, Cost: 2.00, Category: model.CategoryOther,
	})
	require.NoError(t, err)

	_, err = svc.AddToOrder(created.ID)
	require.NoError(t, err)
	_, err = svc.AddToOrder(created.ID)
	require.NoError(t, err)
	order := svc.AdjustOrderItem(created.ID, -1)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.InDelta(t, 10.00, order.Total, 0.001)

	sale, err := svc.Checkout(model.PaymentCash)
	require.NoError(t, err)
	assert.InDelta(t, 10.00, sale.TotalAmount, 0.001)
	assert.Equal(t, model.PaymentCash, sale.PaymentMethod)
	assert.Equal(t, 0.0, svc.GetOrder().Total)
}
