package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"clubhub-backend/database"
	"clubhub-backend/internal/models"
)

// MirrorRepository writes the shadow "registrations" collection. Every call
// is best-effort from the caller's point of view; errors are returned so the
// caller can log them but nothing here is required for a registration to
// succeed.
type MirrorRepository struct {
	col *mongo.Collection
}

func NewMirrorRepository() *MirrorRepository {
	return &MirrorRepository{col: database.DB.Collection("registrations")}
}

func (r *MirrorRepository) Insert(ctx context.Context, s models.ShadowRegistration) error {
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *MirrorRepository) Delete(ctx context.Context, eventID bson.ObjectID, index int) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"event_id": eventID, "index": index})
	return err
}
