package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"clubhub-backend/internal/dto"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/services"
)

type AdminPaymentController struct {
	Ledger       *repository.PaymentReceiptRepository
	Verification *services.VerificationService
}

// ListPaymentReceipts godoc
// @Summary List payment receipts, optionally by status (admin)
// @Tags admin
// @Produce json
// @Param status query string false "Pending, Verified or Rejected"
// @Success 200 {object} map[string]interface{}
// @Router /admin/payments [get]
func (h *AdminPaymentController) ListPaymentReceipts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	receipts, err := h.Ledger.List(ctx, c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list payment receipts"})
	}
	return c.JSON(fiber.Map{"receipts": receipts})
}

// ApprovePayment godoc
// @Summary Approve a pending payment receipt (admin)
// @Tags admin
// @Produce json
// @Param id path string true "Payment receipt id"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /admin/payments/{id}/approve [patch]
func (h *AdminPaymentController) ApprovePayment(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	adminID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	pr, err := h.Verification.Approve(ctx, id, adminID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment receipt verified", "receipt": pr})
}

// RejectPayment godoc
// @Summary Reject a pending payment receipt (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Payment receipt id"
// @Param body body dto.RejectRequest false "Rejection reason"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /admin/payments/{id}/reject [patch]
func (h *AdminPaymentController) RejectPayment(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	adminID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	var req dto.RejectRequest
	_ = c.BodyParser(&req)

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	pr, err := h.Verification.Reject(ctx, id, adminID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment receipt rejected", "receipt": pr})
}

// VerifyRegistrationReceipt godoc
// @Summary Approve/reject the receipt embedded in an event registration (admin)
// @Description Operates on the snapshot inside the event document, not the standalone ledger
// @Tags admin
// @Accept json
// @Produce json
// @Param eventId path string true "Event id"
// @Param userId path string true "Registrant user id"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /admin/events/{eventId}/registrations/{userId}/verify [patch]
func (h *AdminPaymentController) VerifyRegistrationReceipt(approve bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := objectIDParam(c, "eventId")
		if err != nil {
			return err
		}
		userID, err := objectIDParam(c, "userId")
		if err != nil {
			return err
		}
		adminID, err := callerID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}

		var req dto.RejectRequest
		_ = c.BodyParser(&req)

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		event, err := h.Verification.VerifyEmbedded(ctx, eventID, userID, adminID, approve, req.Reason)
		if err != nil {
			return respondError(c, err)
		}

		msg := "Registration receipt verified"
		if !approve {
			msg = "Registration receipt rejected"
		}
		return c.JSON(fiber.Map{"message": msg, "event": event})
	}
}
