package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"clubhub-backend/internal/dto"
	"clubhub-backend/internal/models"
	"clubhub-backend/internal/repository"
)

type CommitteeController struct {
	Members *repository.CommitteeRepository
}

// ListCommittee godoc
// @Summary List committee members
// @Tags directory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /committee [get]
func (h *CommitteeController) ListCommittee(c *fiber.Ctx) error {
	return h.listByKind(c, models.MemberKindCommittee)
}

// ListHODs godoc
// @Summary List heads of department
// @Tags directory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /hods [get]
func (h *CommitteeController) ListHODs(c *fiber.Ctx) error {
	return h.listByKind(c, models.MemberKindHOD)
}

func (h *CommitteeController) listByKind(c *fiber.Ctx, kind string) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	members, err := h.Members.ListByKind(ctx, kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list members"})
	}
	return c.JSON(fiber.Map{"members": members})
}

// CreateMember godoc
// @Summary Add a committee/HOD entry (admin)
// @Tags directory
// @Accept json
// @Produce json
// @Param body body dto.CommitteeMemberRequest true "Member"
// @Success 201 {object} map[string]interface{}
// @Router /admin/committee [post]
func (h *CommitteeController) CreateMember(c *fiber.Ctx) error {
	var req dto.CommitteeMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now().UTC()
	member := models.CommitteeMember{
		ID:         bson.NewObjectID(),
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		PhotoURL:   req.PhotoURL,
		Kind:       req.Kind,
		Order:      req.Order,
		CreatedAt:  &now,
		UpdatedAt:  &now,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.Members.Insert(ctx, member); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create member"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Member created", "member": member})
}

// UpdateMember godoc
// @Summary Update a committee/HOD entry (admin)
// @Tags directory
// @Accept json
// @Produce json
// @Param id path string true "Member id"
// @Param body body dto.CommitteeMemberRequest true "Member"
// @Success 200 {object} map[string]interface{}
// @Router /admin/committee/{id} [put]
func (h *CommitteeController) UpdateMember(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CommitteeMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	set := bson.M{
		"name":       req.Name,
		"position":   req.Position,
		"department": req.Department,
		"photo_url":  req.PhotoURL,
		"kind":       req.Kind,
		"order":      req.Order,
		"updated_at": time.Now().UTC(),
	}
	if err := h.Members.Update(ctx, id, set); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Member not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update member"})
	}
	return c.JSON(fiber.Map{"message": "Member updated"})
}

// DeleteMember godoc
// @Summary Remove a committee/HOD entry (admin)
// @Tags directory
// @Produce json
// @Param id path string true "Member id"
// @Success 200 {object} map[string]interface{}
// @Router /admin/committee/{id} [delete]
func (h *CommitteeController) DeleteMember(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.Members.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Member not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete member"})
	}
	return c.JSON(fiber.Map{"message": "Member deleted"})
}
