package handler

import (
	"strconv"

	"go-resto-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
	insight service.InsightService
}

func NewDashboardHandler(s service.DashboardService, insight service.InsightService) *DashboardHandler {
	return &DashboardHandler{service: s, insight: insight}
}

// GetStats returns the KPI overview.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.GetStats())
}

// GetRevenueTrend returns the trailing daily revenue series for charts.
// Query params: days (default 7)
func (h *DashboardHandler) GetRevenueTrend(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		days = 7
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   h.service.GetRevenueTrend(days),
	})
}

// GetCategoryBreakdown returns sold quantity per menu category.
func (h *DashboardHandler) GetCategoryBreakdown(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCategoryBreakdown())
}

// GetTopSellingItems returns the best sellers.
// Query params: limit (default 5)
func (h *DashboardHandler) GetTopSellingItems(c *fiber.Ctx) error {
	limitStr := c.Query("limit", "5")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 5
	}

	return c.JSON(h.service.GetTopSellingItems(limit))
}

// GenerateInsight asks the text-generation service for a narrative report.
// Always answers 200 with a prose string; service failures come back as the
// fixed fallback message.
// POST /api/v1/dashboard/insight
func (h *DashboardHandler) GenerateInsight(c *fiber.Ctx) error {
	text := h.insight.GenerateInsight(c.UserContext())
	return c.JSON(fiber.Map{"insight": text})
}
