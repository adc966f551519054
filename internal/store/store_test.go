package store

import (
	"testing"

	"go-resto-backoffice/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestStore_Load_SeedsDefaultsWhenEmpty(t *testing.T) {
	s := New(openTestDB(t))
	require.NoError(t, s.Load())

	assert.Len(t, s.Menu(), 18)
	assert.Len(t, s.Inventory(), 9)
	assert.Len(t, s.Expenses(), 4)
	assert.Empty(t, s.Sales())
	assert.False(t, s.IsAuthenticated())
}

func TestStore_RoundTrip_AllCollections(t *testing.T) {
	db := openTestDB(t)

	s := New(db)
	require.NoError(t, s.Load())

	sale := model.Sale{
		ID:        "s1",
		Timestamp: 1756300000000,
		Items: []model.SaleItem{
			{MenuItemID: "c1", Name: "Chicken Tikka Masala", Quantity: 2, PriceAtSale: 19.95},
		},
		TotalAmount:   39.90,
		PaymentMethod: model.PaymentCard,
	}
	require.NoError(t, s.MutateSales(func(sales []model.Sale) []model.Sale {
		return append([]model.Sale{sale}, sales...)
	}))

	item := model.MenuItem{ID: "m1", Name: "Seafood Curry", Price: 22.50, Cost: 8.00, Category: model.CategorySeafood}
	require.NoError(t, s.MutateMenu(func(menu []model.MenuItem) []model.MenuItem {
		return append(menu, item)
	}))

	expense := model.Expense{ID: "e1", Timestamp: 1756200000000, Description: "Gas", Amount: 42.00, Category: "Utilities"}
	require.NoError(t, s.MutateExpenses(func(expenses []model.Expense) []model.Expense {
		return append([]model.Expense{expense}, expenses...)
	}))

	require.NoError(t, s.MutateInventory(func(inv []model.InventoryItem) []model.InventoryItem {
		inv[0].Quantity = 123
		return inv
	}))

	require.NoError(t, s.SetAuthenticated(true))

	// A fresh store over the same database must see identical collections.
	reloaded := New(db)
	require.NoError(t, reloaded.Load())

	sales := reloaded.Sales()
	require.Len(t, sales, 1)
	assert.Equal(t, sale, sales[0])

	menu := reloaded.Menu()
	require.Len(t, menu, 19)
	assert.Equal(t, item, menu[18])

	expenses := reloaded.Expenses()
	require.Len(t, expenses, 5)
	assert.Equal(t, expense, expenses[0])

	assert.Equal(t, 123.0, reloaded.Inventory()[0].Quantity)
	assert.True(t, reloaded.IsAuthenticated())
}

func TestStore_Load_CorruptBlobFallsBackToSeed(t *testing.T) {
	db := openTestDB(t)

	s := New(db)
	require.NoError(t, s.Load())
	require.NoError(t, s.MutateMenu(func(menu []model.MenuItem) []model.MenuItem {
		return menu[:3]
	}))

	// Corrupt the stored menu blob out-of-band.
	require.NoError(t, db.Model(&StateBlob{}).
		Where("key = ?", KeyMenu).
		Update("value", []byte("{not json")).Error)

	reloaded := New(db)
	require.NoError(t, reloaded.Load())

	// Not the truncated 3-item menu: corruption degrades to the seed set.
	assert.Len(t, reloaded.Menu(), 18)
}

func TestStore_MutationPersistsWholeCollection(t *testing.T) {
	db := openTestDB(t)

	s := New(db)
	require.NoError(t, s.Load())

	require.NoError(t, s.MutateInventory(func(inv []model.InventoryItem) []model.InventoryItem {
		return append(inv, model.InventoryItem{ID: "new", Name: "Cardamom", Quantity: 3, Unit: "lbs", MinThreshold: 1})
	}))

	var blob StateBlob
	require.NoError(t, db.First(&blob, "key = ?", KeyInventory).Error)
	assert.Contains(t, string(blob.Value), "Cardamom")
	assert.Contains(t, string(blob.Value), "Basmati Rice")
}

func TestStore_AccessorsReturnCopies(t *testing.T) {
	s := New(openTestDB(t))
	require.NoError(t, s.Load())

	menu := s.Menu()
	menu[0].Name = "tampered"

	assert.NotEqual(t, "tampered", s.Menu()[0].Name)
}
