package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"clubhub-backend/database"
	"clubhub-backend/internal/models"
)

type OTPRepository struct {
	col *mongo.Collection
}

func NewOTPRepository() *OTPRepository {
	return &OTPRepository{col: database.DB.Collection("otp_requests")}
}

// Upsert replaces any pending request for the same email.
func (r *OTPRepository) Upsert(ctx context.Context, req models.OTPRequest) error {
	email := strings.ToLower(req.Email)
	_, _ = r.col.DeleteOne(ctx, bson.M{"email": email})
	req.Email = email
	_, err := r.col.InsertOne(ctx, req)
	return err
}

func (r *OTPRepository) FindByEmail(ctx context.Context, email string) (*models.OTPRequest, error) {
	// Expired requests are swept opportunistically on every lookup.
	_, _ = r.col.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now()}})

	var req models.OTPRequest
	err := r.col.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"email": strings.ToLower(email)})
	return err
}
