package handler

import (
	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	service service.ExpenseService
}

func NewExpenseHandler(s service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: s}
}

func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	return c.JSON(h.service.GetExpenses())
}

// GetCategories lists the suggested expense categories for the form. The
// suggestion list is advisory only; stored categories stay free text.
func (h *ExpenseHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(model.SuggestedExpenseCategories)
}

func (h *ExpenseHandler) AddExpense(c *fiber.Ctx) error {
	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.AddExpense(&expense)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Expense recorded", "data": created})
}
