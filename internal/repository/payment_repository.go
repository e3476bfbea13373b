package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"clubhub-backend/database"
	"clubhub-backend/internal/models"
)

// PaymentRepository covers both the payments collection and its 1:1
// receipts collection.
type PaymentRepository struct {
	paymentCol *mongo.Collection
	receiptCol *mongo.Collection
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		paymentCol: database.DB.Collection("payments"),
		receiptCol: database.DB.Collection("receipts"),
	}
}

func (r *PaymentRepository) InsertPayment(ctx context.Context, p models.Payment) error {
	_, err := r.paymentCol.InsertOne(ctx, p)
	return err
}

func (r *PaymentRepository) InsertReceipt(ctx context.Context, rec models.Receipt) error {
	_, err := r.receiptCol.InsertOne(ctx, rec)
	return err
}

func (r *PaymentRepository) FindPaymentByUserEvent(ctx context.Context, userID, eventID bson.ObjectID) (*models.Payment, error) {
	var p models.Payment
	err := r.paymentCol.FindOne(ctx, bson.M{"user_id": userID, "event_id": eventID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return &p, nil
}

func (r *PaymentRepository) MarkPDFGenerated(ctx context.Context, receiptNumber string, at time.Time) error {
	_, err := r.receiptCol.UpdateOne(ctx,
		bson.M{"receipt_number": receiptNumber},
		bson.M{"$set": bson.M{"pdf_generated_at": at}},
	)
	return err
}
