// Package report derives dashboard aggregates from the store's collections.
// Every function is a pure computation over the snapshots it is given; none
// mutates its inputs, so they are safe to call on every refresh.
package report

import (
	"sort"
	"time"

	"go-resto-backoffice/internal/model"
)

// DailyRevenue is one day bucket in the trailing revenue series.
type DailyRevenue struct {
	Date    string  `json:"date"` // display label, e.g. "Aug 27"
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// CategoryCount is summed sold quantity for one menu category.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ItemCount is summed sold quantity for one menu item name.
type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func TotalRevenue(sales []model.Sale) float64 {
	var sum float64
	for _, s := range sales {
		sum += s.TotalAmount
	}
	return sum
}

func TotalExpenses(expenses []model.Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

func NetProfit(sales []model.Sale, expenses []model.Expense) float64 {
	return TotalRevenue(sales) - TotalExpenses(expenses)
}

// LowStockCount counts inventory items at or below their alert threshold.
func LowStockCount(inventory []model.InventoryItem) int {
	count := 0
	for _, item := range inventory {
		if item.LowStock() {
			count++
		}
	}
	return count
}

// LowStockNames returns the names of items at or below their alert threshold,
// in inventory order.
func LowStockNames(inventory []model.InventoryItem) []string {
	var names []string
	for _, item := range inventory {
		if item.LowStock() {
			names = append(names, item.Name)
		}
	}
	return names
}

// TrailingDailyRevenue buckets sales into the last windowDays calendar days
// ending at now, oldest first. A sale belongs to the bucket matching its
// timestamp's full calendar date in local time; days without sales report
// zero. Profit per day is revenue minus the catalog cost of each line item,
// looked up live; lines whose menu item no longer exists contribute zero cost.
func TrailingDailyRevenue(sales []model.Sale, menu []model.MenuItem, windowDays int, now time.Time) []DailyRevenue {
	if windowDays <= 0 {
		return nil
	}

	costByID := make(map[string]float64, len(menu))
	for _, m := range menu {
		costByID[m.ID] = m.Cost
	}

	type bucket struct {
		revenue float64
		cost    float64
	}
	byDay := make(map[string]*bucket, windowDays)

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(windowDays - 1))

	for _, s := range sales {
		day := time.UnixMilli(s.Timestamp).In(now.Location()).Format("2006-01-02")
		b, ok := byDay[day]
		if !ok {
			b = &bucket{}
			byDay[day] = b
		}
		b.revenue += s.TotalAmount
		for _, item := range s.Items {
			b.cost += costByID[item.MenuItemID] * float64(item.Quantity)
		}
	}

	series := make([]DailyRevenue, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		d := start.AddDate(0, 0, i)
		entry := DailyRevenue{Date: d.Format("Jan 02")}
		if b, ok := byDay[d.Format("2006-01-02")]; ok {
			entry.Revenue = b.revenue
			entry.Profit = b.revenue - b.cost
		}
		series = append(series, entry)
	}
	return series
}

// CategoryBreakdown sums sold quantity per menu category. The category comes
// from a live catalog lookup of each line's menu item id, not the frozen line
// name; lines whose menu item no longer exists fall into the "Other" bucket.
// Result order is first-encountered order.
func CategoryBreakdown(sales []model.Sale, menu []model.MenuItem) []CategoryCount {
	categoryByID := make(map[string]model.Category, len(menu))
	for _, m := range menu {
		categoryByID[m.ID] = m.Category
	}

	index := make(map[string]int)
	var breakdown []CategoryCount
	for _, s := range sales {
		for _, item := range s.Items {
			name := string(model.CategoryOther)
			if cat, ok := categoryByID[item.MenuItemID]; ok {
				name = string(cat)
			}
			if i, ok := index[name]; ok {
				breakdown[i].Value += item.Quantity
			} else {
				index[name] = len(breakdown)
				breakdown = append(breakdown, CategoryCount{Name: name, Value: item.Quantity})
			}
		}
	}
	return breakdown
}

// TopSellingItems sums sold quantity per line-item snapshot name and returns
// the n best sellers, descending. Ties keep first-encountered order.
func TopSellingItems(sales []model.Sale, n int) []ItemCount {
	index := make(map[string]int)
	var counts []ItemCount
	for _, s := range sales {
		for _, item := range s.Items {
			if i, ok := index[item.Name]; ok {
				counts[i].Quantity += item.Quantity
			} else {
				index[item.Name] = len(counts)
				counts = append(counts, ItemCount{Name: item.Name, Quantity: item.Quantity})
			}
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Quantity > counts[j].Quantity
	})

	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// Snapshot is the pre-summarized extract handed to the insight generator.
// No raw sale, menu or customer records cross that boundary.
type Snapshot struct {
	TotalRevenue  float64
	TotalExpenses float64
	NetProfit     float64
	TopItems      []ItemCount
	LowStock      []string
}

// BuildSnapshot condenses the full collections into a Snapshot with the top
// three sellers and current low-stock names.
func BuildSnapshot(sales []model.Sale, expenses []model.Expense, inventory []model.InventoryItem) Snapshot {
	return Snapshot{
		TotalRevenue:  TotalRevenue(sales),
		TotalExpenses: TotalExpenses(expenses),
		NetProfit:     NetProfit(sales, expenses),
		TopItems:      TopSellingItems(sales, 3),
		LowStock:      LowStockNames(inventory),
	}
}
