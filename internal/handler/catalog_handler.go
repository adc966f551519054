package handler

import (
	"errors"

	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) GetMenu(c *fiber.Ctx) error {
	return c.JSON(h.service.GetMenu())
}

// GetCategories lists the fixed menu category set for the add-item form.
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(model.Categories)
}

func (h *CatalogHandler) AddMenuItem(c *fiber.Ctx) error {
	var item model.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.AddMenuItem(&item)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Menu item created", "data": created})
}

func (h *CatalogHandler) DeleteMenuItem(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.service.DeleteMenuItem(id); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Menu item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Menu item deleted"})
}
