package middleware

import (
	"strings"

	"go-resto-backoffice/internal/store"
	"go-resto-backoffice/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the session token and checks the store's auth flag so
// a logout invalidates outstanding tokens.
func RequireAuth(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		if !st.IsAuthenticated() {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged out)"})
		}

		c.Locals("session_id", claims.SessionID)
		return c.Next()
	}
}
