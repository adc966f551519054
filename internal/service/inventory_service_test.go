package service

import (
	"testing"

	"go-resto-backoffice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_AdjustQuantity_ClampsAtZero(t *testing.T) {
	st := newTestStore(t)
	svc := NewInventoryService(st, newTestHub())

	// Cooking Oil seeds at 10 gallons.
	updated, err := svc.AdjustQuantity("8", -999)
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Quantity)

	// Item survives the drain; decrementing never deletes.
	assert.Len(t, st.Inventory(), 9)
}

func TestInventoryService_AdjustQuantity_UnknownID(t *testing.T) {
	svc := NewInventoryService(newTestStore(t), newTestHub())

	_, err := svc.AdjustQuantity("missing", 5)
	require.ErrorIs(t, err, ErrInventoryItemNotFound)
}

func TestInventoryService_AddInventoryItem_Validates(t *testing.T) {
	svc := NewInventoryService(newTestStore(t), newTestHub())

	_, err := svc.AddInventoryItem(&model.InventoryItem{Name: "", Quantity: 5})
	require.Error(t, err)

	created, err := svc.AddInventoryItem(&model.InventoryItem{
		Name: "Cardamom", Quantity: 3, Unit: "lbs", MinThreshold: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestCatalogService_AddAndDelete(t *testing.T) {
	st := newTestStore(t)
	svc := NewCatalogService(st)

	_, err := svc.AddMenuItem(&model.MenuItem{Name: "Bad Category", Price: 5, Category: "Sushi"})
	require.Error(t, err)

	_, err = svc.AddMenuItem(&model.MenuItem{Name: "Negative", Price: -1, Category: model.CategoryOther})
	require.Error(t, err)

	created, err := svc.AddMenuItem(&model.MenuItem{
		Name: "Tandoori Shrimp", Price: 23.95, Cost: 9.00, Category: model.CategorySeafood,
	})
	require.NoError(t, err)
	assert.Len(t, st.Menu(), 19)

	require.NoError(t, svc.DeleteMenuItem(created.ID))
	assert.Len(t, st.Menu(), 18)

	require.ErrorIs(t, svc.DeleteMenuItem(created.ID), ErrMenuItemNotFound)
}

func TestExpenseService_AddExpense_Defaults(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	created, err := svc.AddExpense(&model.Expense{Description: "Knife sharpening", Amount: 35.00})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.Timestamp)
	assert.Equal(t, "Other", created.Category)

	// Newest first, on top of the four seeds.
	expenses := st.Expenses()
	require.Len(t, expenses, 5)
	assert.Equal(t, created.ID, expenses[0].ID)
}

func TestExpenseService_AddExpense_RejectsNegativeAmount(t *testing.T) {
	svc := NewExpenseService(newTestStore(t))

	_, err := svc.AddExpense(&model.Expense{Description: "Refund?", Amount: -10})
	require.Error(t, err)
}
