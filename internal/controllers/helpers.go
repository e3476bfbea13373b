package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var validate = validator.New()

func callerID(c *fiber.Ctx) (bson.ObjectID, error) {
	uidHex, ok := c.Locals("user_id").(string)
	if !ok || uidHex == "" {
		return bson.ObjectID{}, fiber.ErrUnauthorized
	}
	return bson.ObjectIDFromHex(uidHex)
}

func callerIsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == "admin"
}

func objectIDParam(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
