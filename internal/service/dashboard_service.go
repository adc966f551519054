package service

import (
	"time"

	"go-resto-backoffice/internal/report"
	"go-resto-backoffice/internal/store"
)

// DashboardStats is the KPI overview payload.
type DashboardStats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	LowStockCount int     `json:"low_stock_count"`
}

type DashboardService interface {
	GetStats() DashboardStats
	GetRevenueTrend(days int) []report.DailyRevenue
	GetCategoryBreakdown() []report.CategoryCount
	GetTopSellingItems(n int) []report.ItemCount
}

// dashboardService recomputes every aggregate from the store's current
// collections on each call; nothing is cached or mutated.
type dashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{store: st}
}

func (s *dashboardService) GetStats() DashboardStats {
	sales := s.store.Sales()
	expenses := s.store.Expenses()
	return DashboardStats{
		TotalRevenue:  report.TotalRevenue(sales),
		TotalExpenses: report.TotalExpenses(expenses),
		NetProfit:     report.NetProfit(sales, expenses),
		LowStockCount: report.LowStockCount(s.store.Inventory()),
	}
}

func (s *dashboardService) GetRevenueTrend(days int) []report.DailyRevenue {
	return report.TrailingDailyRevenue(s.store.Sales(), s.store.Menu(), days, time.Now())
}

func (s *dashboardService) GetCategoryBreakdown() []report.CategoryCount {
	return report.CategoryBreakdown(s.store.Sales(), s.store.Menu())
}

func (s *dashboardService) GetTopSellingItems(n int) []report.ItemCount {
	return report.TopSellingItems(s.store.Sales(), n)
}
