package handler

import (
	"errors"

	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	return c.JSON(h.service.GetInventory())
}

func (h *InventoryHandler) AddInventoryItem(c *fiber.Ctx) error {
	var item model.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.AddInventoryItem(&item)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Inventory item created", "data": created})
}

type AdjustQuantityRequest struct {
	Delta float64 `json:"delta"`
}

// AdjustQuantity applies a signed stock delta to one item.
// PATCH /api/v1/inventory/:id/quantity
func (h *InventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	id := c.Params("id")

	var req AdjustQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.AdjustQuantity(id, req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrInventoryItemNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Inventory item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Quantity updated", "data": updated})
}
