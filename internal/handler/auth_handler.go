package handler

import (
	"go-resto-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type PinRequest struct {
	Pin string `json:"pin"`
}

type VerifyRequest struct {
	Pin  string `json:"pin"`
	Code string `json:"code"`
}

// RequestCode handles the first login step.
// POST /api/v1/auth/pin
func (h *AuthHandler) RequestCode(c *fiber.Ctx) error {
	var req PinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Pin == "" {
		return c.Status(400).JSON(fiber.Map{"error": "PIN is required"})
	}

	phone, err := h.authService.RequestCode(req.Pin)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Verification code sent", "sent_to": phone})
}

// Verify handles the second login step and issues the session token.
// POST /api/v1/auth/verify
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Pin == "" || req.Code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "PIN and code are required"})
	}

	token, err := h.authService.Verify(req.Pin, req.Code)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"token": token})
}

// Logout clears the stored auth flag.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log out"})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
