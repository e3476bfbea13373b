package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"clubhub-backend/internal/dto"
	"clubhub-backend/internal/services"
	"clubhub-backend/internal/storage"
)

type RegistrationController struct {
	Registrations *services.RegistrationService
	Uploads       *storage.Store
	Log           zerolog.Logger
}

// RegisterForEvent godoc
// @Summary Register the caller for an event
// @Description Multipart form; an optional "receipt" file is stored and attached to the registration
// @Tags registrations
// @Accept mpfd
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /events/{id}/register [post]
func (h *RegistrationController) RegisterForEvent(c *fiber.Ctx) error {
	eventID, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	form := dto.RegisterForm{
		Phone:         c.FormValue("phone"),
		PaymentMethod: c.FormValue("payment_method"),
	}

	uploadedURL := ""
	if fh, err := c.FormFile("receipt"); err == nil && fh != nil {
		uploadedURL, err = h.Uploads.SaveReceipt(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	result, err := h.Registrations.Register(ctx, eventID, userID, form, uploadedURL)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Registered successfully",
		"event":        result.Event,
		"receipt":      result.Receipt,
		"pdfGenerated": result.PDFGenerated,
	})
}

// UnregisterFromEvent godoc
// @Summary Remove the caller's registration
// @Tags registrations
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id}/unregister [post]
func (h *RegistrationController) UnregisterFromEvent(c *fiber.Ctx) error {
	eventID, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	event, err := h.Registrations.Unregister(ctx, eventID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Unregistered successfully",
		"event":   event,
	})
}
