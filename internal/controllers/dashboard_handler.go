package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"clubhub-backend/internal/repository"
)

type DashboardController struct {
	Stats *repository.StatsRepository
}

// Dashboard godoc
// @Summary Admin dashboard counters
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/dashboard [get]
func (h *DashboardController) Dashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.Stats.Dashboard(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}
