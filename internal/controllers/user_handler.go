package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"clubhub-backend/internal/dto"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/services"
)

type UserAdminController struct {
	Users *repository.UserRepository
}

// UpdateUserRole godoc
// @Summary Change a user's role (admin)
// @Description Takes effect on the next admin-gated request; member routes keep the token's role until re-login
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param body body dto.RoleUpdateRequest true "New role"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/users/{id}/role [patch]
func (h *UserAdminController) UpdateUserRole(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.RoleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if user == nil {
		return respondError(c, services.ErrUserNotFound)
	}

	if err := h.Users.UpdateRole(ctx, id, req.Role); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update role"})
	}
	return c.JSON(fiber.Map{"message": "Role updated", "role": req.Role})
}

// DeleteUser godoc
// @Summary Remove a user account (admin)
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/users/{id} [delete]
func (h *UserAdminController) DeleteUser(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if user == nil {
		return respondError(c, services.ErrUserNotFound)
	}

	if err := h.Users.Delete(ctx, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
