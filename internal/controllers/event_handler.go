package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"clubhub-backend/internal/dto"
	"clubhub-backend/internal/models"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/services"
)

type EventController struct {
	Events *repository.EventRepository
	Hub    services.Broadcaster
}

// CreateEvent godoc
// @Summary Create an event (admin)
// @Tags events
// @Accept json
// @Produce json
// @Param body body dto.EventCreateRequest true "Event"
// @Success 201 {object} map[string]interface{}
// @Router /events [post]
func (h *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	adminID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	now := time.Now().UTC()
	event := models.Event{
		ID:              bson.NewObjectID(),
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Location:        req.Location,
		Category:        req.Category,
		Type:            req.Type,
		IsPublic:        req.IsPublic,
		RequiresPayment: req.RequiresPayment,
		PaymentAmount:   req.PaymentAmount,
		Fee:             req.Fee,
		RegisteredUsers: []bson.ObjectID{},
		Registrations:   []models.Registration{},
		CreatedBy:       adminID,
		CreatedAt:       &now,
		UpdatedAt:       &now,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.Events.Insert(ctx, event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create event"})
	}

	h.Hub.Broadcast("events", fiber.Map{"event_id": event.ID.Hex(), "action": "created"})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Event created", "event": event})
}

// ListEvents godoc
// @Summary List events
// @Description Visitors see public, non-cancelled events; admins see everything
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /events [get]
func (h *EventController) ListEvents(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"is_public": true, "cancelled": false}
	if callerIsAdmin(c) {
		filter = bson.M{}
	}

	events, err := h.Events.Find(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list events"})
	}
	return c.JSON(fiber.Map{"events": events})
}

// GetEvent godoc
// @Summary Get one event
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id} [get]
func (h *EventController) GetEvent(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	event, err := h.Events.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if event == nil {
		return respondError(c, services.ErrEventNotFound)
	}
	if !event.IsPublic && !callerIsAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This event is private"})
	}
	return c.JSON(fiber.Map{"event": event})
}

// UpdateEvent godoc
// @Summary Update an event (admin)
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param body body dto.EventUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Router /events/{id} [put]
func (h *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Date != nil {
		set["date"] = *req.Date
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.IsPublic != nil {
		set["is_public"] = *req.IsPublic
	}
	if req.RequiresPayment != nil {
		set["requires_payment"] = *req.RequiresPayment
	}
	if req.PaymentAmount != nil {
		set["payment_amount"] = *req.PaymentAmount
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	event, err := h.Events.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if event == nil {
		return respondError(c, services.ErrEventNotFound)
	}

	if err := h.Events.Update(ctx, id, set); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update event"})
	}

	h.Hub.Broadcast("events", fiber.Map{"event_id": id.Hex(), "action": "updated"})
	return c.JSON(fiber.Map{"message": "Event updated"})
}

// CancelEvent godoc
// @Summary Cancel an event (admin)
// @Description Events are never hard-deleted; cancellation is a flag
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} map[string]interface{}
// @Router /events/{id}/cancel [patch]
func (h *EventController) CancelEvent(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	event, err := h.Events.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if event == nil {
		return respondError(c, services.ErrEventNotFound)
	}

	if err := h.Events.Update(ctx, id, bson.M{"cancelled": true, "updated_at": time.Now().UTC()}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel event"})
	}

	h.Hub.Broadcast("events", fiber.Map{"event_id": id.Hex(), "action": "cancelled"})
	return c.JSON(fiber.Map{"message": "Event cancelled"})
}
