package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clubhub-backend/internal/dto"
	"clubhub-backend/internal/services"
)

// Chatbot godoc
// @Summary Ask the rule-based club assistant
// @Tags chatbot
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "Message"
// @Success 200 {object} map[string]interface{}
// @Router /chatbot [post]
func Chatbot(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}

	reply, topic := services.ChatReply(req.Message)
	return c.JSON(fiber.Map{"reply": reply, "topic": topic})
}
