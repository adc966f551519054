package handler

import (
	"errors"

	"go-resto-backoffice/internal/cart"
	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

// GetSales returns the full committed sale history, newest first.
func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	return c.JSON(h.service.GetSales())
}

// GetOrder returns the in-progress order.
// GET /api/v1/order
func (h *SalesHandler) GetOrder(c *fiber.Ctx) error {
	return c.JSON(h.service.GetOrder())
}

type AddToOrderRequest struct {
	MenuItemID string `json:"menu_item_id"`
}

// AddToOrder adds one of a menu item to the order.
// POST /api/v1/order/items
func (h *SalesHandler) AddToOrder(c *fiber.Ctx) error {
	var req AddToOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.MenuItemID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "menu_item_id is required"})
	}

	order, err := h.service.AddToOrder(req.MenuItemID)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Menu item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(order)
}

type AdjustOrderItemRequest struct {
	Delta int `json:"delta"`
}

// AdjustOrderItem changes a line's quantity by a signed delta. Reaching zero
// removes the line; an unknown item is a harmless no-op.
// PATCH /api/v1/order/items/:menuItemId
func (h *SalesHandler) AdjustOrderItem(c *fiber.Ctx) error {
	var req AdjustOrderItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order := h.service.AdjustOrderItem(c.Params("menuItemId"), req.Delta)
	return c.JSON(order)
}

// ClearOrder discards the in-progress order.
// DELETE /api/v1/order
func (h *SalesHandler) ClearOrder(c *fiber.Ctx) error {
	h.service.ClearOrder()
	return c.JSON(fiber.Map{"message": "Order cleared"})
}

type CheckoutRequest struct {
	PaymentMethod model.PaymentMethod `json:"payment_method"`
}

// Checkout commits the order as a Sale.
// POST /api/v1/order/checkout
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.service.Checkout(req.PaymentMethod)
	if err != nil {
		if errors.Is(err, cart.ErrEmptyOrder) {
			return c.Status(400).JSON(fiber.Map{"error": "Order is empty"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale completed", "data": sale})
}
