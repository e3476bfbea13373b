package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"clubhub-backend/internal/services"
)

type ReceiptController struct {
	Receipts *services.ReceiptService
}

// DownloadReceipt godoc
// @Summary Download the caller's receipt for an event
// @Description format=pdf (default) requires the receipt to be Verified; format=html has no gate. Admins may fetch another registrant's receipt via userId.
// @Tags receipts
// @Produce application/pdf
// @Param eventId path string true "Event id"
// @Param format query string false "pdf or html"
// @Param userId query string false "Registrant user id (admin only)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Router /receipts/event/{eventId}/download [get]
func (h *ReceiptController) DownloadReceipt(c *fiber.Ctx) error {
	eventID, err := objectIDParam(c, "eventId")
	if err != nil {
		return err
	}
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}
	if target := c.Query("userId"); target != "" && callerIsAdmin(c) {
		userID, err = bson.ObjectIDFromHex(target)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
		}
	}

	format := c.Query("format", services.FormatPDF)

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	doc, err := h.Receipts.Render(ctx, eventID, userID, format)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	if doc.ContentType == "application/pdf" {
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	}
	return c.Send(doc.Content)
}

// ShareReceipt godoc
// @Summary Produce a public share link for the caller's receipt
// @Tags receipts
// @Produce json
// @Param eventId path string true "Event id"
// @Success 200 {object} map[string]interface{}
// @Router /receipts/event/{eventId}/share [get]
func (h *ReceiptController) ShareReceipt(c *fiber.Ctx) error {
	eventID, err := objectIDParam(c, "eventId")
	if err != nil {
		return err
	}
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	token, url, err := h.Receipts.Share(ctx, eventID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"shareUrl": url, "shareToken": token})
}

// ViewSharedReceipt godoc
// @Summary View a shared receipt (no auth)
// @Tags receipts
// @Produce html
// @Param token path string true "Share token"
// @Success 200 {string} string
// @Failure 400 {object} map[string]interface{}
// @Router /receipts/shared/{token} [get]
func (h *ReceiptController) ViewSharedReceipt(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	doc, err := h.Receipts.ViewShared(ctx, c.Params("token"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.Send(doc.Content)
}
