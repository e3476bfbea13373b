package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clubhub-backend/internal/services"
)

// respondError maps workflow errors onto HTTP statuses. Anything unmapped
// is an internal failure and comes back as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var notVerified *services.NotVerifiedError
	var conflict *services.StatusConflictError

	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRegistrationNotFound),
		errors.Is(err, services.ErrNoReceipt),
		errors.Is(err, services.ErrReceiptNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyRegistered):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrEventCancelled),
		errors.Is(err, services.ErrInvalidShareToken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &notVerified):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
