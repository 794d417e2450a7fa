package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AccountRequired gates the account area. Identity is handled by an external
// provider; this middleware only consumes its verdict, carried in the
// X-Account-Token header, and never verifies credentials itself. With
// enabled=false the gate is bypassed (local development).
func AccountRequired(enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}

		token := strings.TrimSpace(c.Get("X-Account-Token"))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing account token",
			})
		}

		c.Locals("account_token", token)
		return c.Next()
	}
}
