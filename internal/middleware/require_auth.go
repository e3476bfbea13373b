package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"clubhub-backend/internal/models"
	"clubhub-backend/internal/repository"
)

// RequireAuth gates a route on a parsed bearer token.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := c.Locals("user_id").(string)
		if !ok || uid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}
		return c.Next()
	}
}

// RequireAdmin re-fetches the user so a role change takes effect without
// waiting for the token to expire. The token's role claim is deliberately
// not trusted here.
func RequireAdmin(users *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uidHex, ok := c.Locals("user_id").(string)
		if !ok || uidHex == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}
		uid, err := bson.ObjectIDFromHex(uidHex)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user id"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByID(ctx, uid)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
		}
		if user == nil || user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
		}
		return c.Next()
	}
}
