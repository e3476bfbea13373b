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

type PaymentReceiptRepository struct {
	col *mongo.Collection
}

func NewPaymentReceiptRepository() *PaymentReceiptRepository {
	return &PaymentReceiptRepository{col: database.DB.Collection("payment_receipts")}
}

func (r *PaymentReceiptRepository) Insert(ctx context.Context, pr models.PaymentReceipt) error {
	_, err := r.col.InsertOne(ctx, pr)
	return err
}

func (r *PaymentReceiptRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.PaymentReceipt, error) {
	var pr models.PaymentReceipt
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find payment receipt: %w", err)
	}
	return &pr, nil
}

func (r *PaymentReceiptRepository) List(ctx context.Context, status string) ([]models.PaymentReceipt, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list payment receipts: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.PaymentReceipt
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode payment receipts: %w", err)
	}
	return out, nil
}

func (r *PaymentReceiptRepository) Replace(ctx context.Context, pr *models.PaymentReceipt) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": pr.ID}, pr)
	return err
}
