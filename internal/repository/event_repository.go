package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"clubhub-backend/database"
	"clubhub-backend/internal/models"
)

type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository() *EventRepository {
	return &EventRepository{col: database.DB.Collection("events")}
}

func (r *EventRepository) Insert(ctx context.Context, e models.Event) error {
	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *EventRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	var e models.Event
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) Find(ctx context.Context, filter bson.M) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

// Replace persists the whole event document. The registration workflow
// mutates embedded registrations in memory and writes the event back in one
// shot, so partial $set updates are not used here.
func (r *EventRepository) Replace(ctx context.Context, e *models.Event) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	return err
}

func (r *EventRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}
