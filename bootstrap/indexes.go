package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique indexes the workflows rely on. Duplicate
// registrations inside an event document are checked by the registration
// service itself, not by an index, because registrations are embedded.
func EnsureIndexes(db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
		},
	)
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = db.Collection("payments").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "transaction_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_payment_txn"),
		},
	)
	if err != nil {
		return fmt.Errorf("payments indexes: %w", err)
	}

	_, err = db.Collection("payment_receipts").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "event_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_user_event_receipt"),
		},
	)
	if err != nil {
		return fmt.Errorf("payment_receipts indexes: %w", err)
	}
	return nil
}
