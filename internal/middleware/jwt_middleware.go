package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/adityamathur98/ecommerce-backend/internal/services"
)

// Locals keys under which verified claims are stored for handlers.
const (
	LocalUsername = "username"
	LocalUserID   = "user_id"
)

// AuthRequired is a Fiber middleware that verifies the bearer token on a
// request and attaches its claims, or rejects with 401. The three failure
// messages are distinct: missing header, missing token segment, bad token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing Authorization Header",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) < 2 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token Missing",
			})
		}
		tokenString := parts[1]

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Token verification failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid JWT Token",
			})
		}

		// Token claims are trusted for their whole lifetime; no store lookup.
		c.Locals(LocalUsername, claims["username"])
		c.Locals(LocalUserID, claims["id"])

		return c.Next()
	}
}
