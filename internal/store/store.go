package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"go-resto-backoffice/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys, one blob per collection plus the auth flag.
const (
	KeyMenu      = "resto_menu"
	KeySales     = "resto_sales"
	KeyInventory = "resto_inventory"
	KeyExpenses  = "resto_expenses"
	KeyAuth      = "resto_auth"
)

// StateBlob is one serialized collection. The table always holds the entire
// current contents of each collection, never a change log.
type StateBlob struct {
	Key       string `gorm:"type:varchar(50);primaryKey" json:"key"`
	Value     []byte `gorm:"not null" json:"value"`
	UpdatedAt time.Time
}

func (StateBlob) TableName() string {
	return "state_blobs"
}

// Store is the single source of truth for the four collections and the
// authentication flag. Mutations apply an in-memory transform and persist the
// whole collection as one unit.
type Store struct {
	db *gorm.DB
	mu sync.RWMutex

	menu      []model.MenuItem
	sales     []model.Sale
	inventory []model.InventoryItem
	expenses  []model.Expense
	authed    bool
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load reads each collection from durable storage. An absent or undecodable
// blob falls back to the seed dataset and is persisted immediately; load
// failures are never fatal.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.AutoMigrate(&StateBlob{}); err != nil {
		return err
	}

	if !s.loadBlob(KeyMenu, &s.menu) {
		s.menu = model.SeedMenu()
		s.persist(KeyMenu, s.menu)
	}
	if !s.loadBlob(KeySales, &s.sales) {
		s.sales = []model.Sale{}
		s.persist(KeySales, s.sales)
	}
	if !s.loadBlob(KeyInventory, &s.inventory) {
		s.inventory = model.SeedInventory()
		s.persist(KeyInventory, s.inventory)
	}
	if !s.loadBlob(KeyExpenses, &s.expenses) {
		s.expenses = model.SeedExpenses()
		s.persist(KeyExpenses, s.expenses)
	}
	if !s.loadBlob(KeyAuth, &s.authed) {
		s.authed = false
		s.persist(KeyAuth, s.authed)
	}

	return nil
}

// loadBlob reads and decodes one key. Returns false when the blob is missing
// or corrupt so the caller can seed defaults instead.
func (s *Store) loadBlob(key string, target interface{}) bool {
	var blob StateBlob
	if err := s.db.First(&blob, "key = ?", key).Error; err != nil {
		return false
	}
	if err := json.Unmarshal(blob.Value, target); err != nil {
		log.Printf("Warning: stored blob %q is corrupt, falling back to defaults: %v", key, err)
		return false
	}
	return true
}

// persist overwrites one key with the full serialized value. Caller must hold
// the lock.
func (s *Store) persist(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	blob := StateBlob{Key: key, Value: payload}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&blob).Error
}

// ---- Snapshot accessors (copies; callers never see internal slices) ----

func (s *Store) Menu() []model.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.MenuItem(nil), s.menu...)
}

func (s *Store) Sales() []model.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Sale(nil), s.sales...)
}

func (s *Store) Inventory() []model.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.InventoryItem(nil), s.inventory...)
}

func (s *Store) Expenses() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Expense(nil), s.expenses...)
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authed
}

// ---- Mutations (in-memory transform + whole-collection overwrite) ----

func (s *Store) MutateMenu(fn func([]model.MenuItem) []model.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(append([]model.MenuItem(nil), s.menu...))
	if err := s.persist(KeyMenu, next); err != nil {
		return err
	}
	s.menu = next
	return nil
}

func (s *Store) MutateSales(fn func([]model.Sale) []model.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(append([]model.Sale(nil), s.sales...))
	if err := s.persist(KeySales, next); err != nil {
		return err
	}
	s.sales = next
	return nil
}

func (s *Store) MutateInventory(fn func([]model.InventoryItem) []model.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(append([]model.InventoryItem(nil), s.inventory...))
	if err := s.persist(KeyInventory, next); err != nil {
		return err
	}
	s.inventory = next
	return nil
}

func (s *Store) MutateExpenses(fn func([]model.Expense) []model.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(append([]model.Expense(nil), s.expenses...))
	if err := s.persist(KeyExpenses, next); err != nil {
		return err
	}
	s.expenses = next
	return nil
}

func (s *Store) SetAuthenticated(authed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(KeyAuth, authed); err != nil {
		return err
	}
	s.authed = authed
	return nil
}
