package cart

import (
	"testing"

	"go-resto-backoffice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tikka = model.MenuItem{ID: "c1", Name: "Chicken Tikka Masala", Price: 19.95, Cost: 5.50, Category: model.CategoryChicken}
	naan  = model.MenuItem{ID: "b1", Name: "Plain Naan", Price: 3.50, Cost: 0.50, Category: model.CategoryBread}
	lassi = model.MenuItem{ID: "d1", Name: "Mango Lassi", Price: 5.50, Cost: 1.50, Category: model.CategoryBeverage}
)

func TestCart_AddItem_MergesSameMenuItem(t *testing.T) {
	c := New()

	c.AddItem(tikka)
	c.AddItem(naan)
	c.AddItem(tikka)
	c.AddItem(tikka)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "c1", items[0].MenuItemID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "b1", items[1].MenuItemID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCart_AddItem_PreservesInsertionOrder(t *testing.T) {
	c := New()

	c.AddItem(naan)
	c.AddItem(tikka)
	c.AddItem(lassi)
	c.AddItem(naan)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"b1", "c1", "d1"}, []string{items[0].MenuItemID, items[1].MenuItemID, items[2].MenuItemID})
}

func TestCart_AddItem_FreezesPriceAtSale(t *testing.T) {
	c := New()
	item := tikka

	c.AddItem(item)

	// Catalog price changes after the line was added must not leak in.
	item.Price = 99.99
	c.AddItem(item)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 19.95, items[0].PriceAtSale)
}

func TestCart_AdjustQuantity_RemovesAtZero(t *testing.T) {
	c := New()
	c.AddItem(tikka)
	c.AddItem(tikka)
	c.AddItem(tikka)

	c.AdjustQuantity("c1", -1)
	c.AdjustQuantity("c1", -1)
	c.AdjustQuantity("c1", -1)

	assert.Equal(t, 0, c.Len())

	// A further decrement is a no-op, not an error.
	c.AdjustQuantity("c1", -1)
	assert.Equal(t, 0, c.Len())
}

func TestCart_AdjustQuantity_FloorsAtZero(t *testing.T) {
	c := New()
	c.AddItem(naan)

	c.AdjustQuantity("b1", -10)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.Total())
}

func TestCart_AdjustQuantity_UnknownIDIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(naan)

	c.AdjustQuantity("nope", 5)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCart_Total_RecomputedAfterInterleavedMutations(t *testing.T) {
	c := New()

	c.AddItem(tikka) // 19.95
	c.AddItem(naan)  // 3.50
	assert.InDelta(t, 23.45, c.Total(), 0.001)

	c.AdjustQuantity("c1", 2) // 3 x 19.95
	assert.InDelta(t, 63.35, c.Total(), 0.001)

	c.AdjustQuantity("b1", -1) // naan removed
	assert.InDelta(t, 59.85, c.Total(), 0.001)

	c.AddItem(lassi) // + 5.50
	assert.InDelta(t, 65.35, c.Total(), 0.001)
}

func TestCart_Checkout_EmptyOrderIsNoOp(t *testing.T) {
	c := New()

	sale, err := c.Checkout(model.PaymentCash)

	require.ErrorIs(t, err, ErrEmptyOrder)
	assert.Nil(t, sale)
	assert.Equal(t, 0, c.Len())
}

func TestCart_Checkout_BuildsSaleAndResets(t *testing.T) {
	c := New()
	item := model.MenuItem{ID: "x1", Name: "Item X", Price: 10.00, Category: model.CategoryOther}

	c.AddItem(item)
	c.AddItem(item)
	c.AdjustQuantity("x1", -1)

	require.Equal(t, 1, c.Len())
	assert.InDelta(t, 10.00, c.Total(), 0.001)

	sale, err := c.Checkout(model.PaymentCash)
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.NotEmpty(t, sale.ID)
	assert.NotZero(t, sale.Timestamp)
	assert.Equal(t, model.PaymentCash, sale.PaymentMethod)
	assert.InDelta(t, 10.00, sale.TotalAmount, 0.001)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, 1, sale.Items[0].Quantity)

	// Cart is reset to empty.
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.Total())
}

func TestCart_Checkout_SaleItemsAreSnapshots(t *testing.T) {
	c := New()
	c.AddItem(tikka)

	sale, err := c.Checkout(model.PaymentCard)
	require.NoError(t, err)

	// Mutating the cart afterwards must not reach into the committed sale.
	c.AddItem(tikka)
	c.AddItem(tikka)

	require.Len(t, sale.Items, 1)
	assert.Equal(t, 1, sale.Items[0].Quantity)
}
