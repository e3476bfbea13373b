package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"clubhub-backend/database"
	"clubhub-backend/internal/models"
)

type DashboardStats struct {
	Users            int64 `json:"users"`
	Members          int64 `json:"members"`
	Events           int64 `json:"events"`
	UpcomingEvents   int64 `json:"upcoming_events"`
	Registrations    int64 `json:"registrations"`
	PendingReceipts  int64 `json:"pending_receipts"`
	VerifiedReceipts int64 `json:"verified_receipts"`
	RejectedReceipts int64 `json:"rejected_receipts"`
}

type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{db: database.DB}
}

func (r *StatsRepository) Dashboard(ctx context.Context) (*DashboardStats, error) {
	s := &DashboardStats{}
	var err error

	if s.Users, err = r.db.Collection("users").CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if s.Members, err = r.db.Collection("users").CountDocuments(ctx, bson.M{"role": models.RoleMember}); err != nil {
		return nil, err
	}
	if s.Events, err = r.db.Collection("events").CountDocuments(ctx, bson.M{"cancelled": false}); err != nil {
		return nil, err
	}
	if s.UpcomingEvents, err = r.db.Collection("events").CountDocuments(ctx, bson.M{
		"cancelled": false,
		"date":      bson.M{"$gte": time.Now()},
	}); err != nil {
		return nil, err
	}
	if s.PendingReceipts, err = r.db.Collection("payment_receipts").CountDocuments(ctx, bson.M{"status": models.ReceiptStatusPending}); err != nil {
		return nil, err
	}
	if s.VerifiedReceipts, err = r.db.Collection("payment_receipts").CountDocuments(ctx, bson.M{"status": models.ReceiptStatusVerified}); err != nil {
		return nil, err
	}
	if s.RejectedReceipts, err = r.db.Collection("payment_receipts").CountDocuments(ctx, bson.M{"status": models.ReceiptStatusRejected}); err != nil {
		return nil, err
	}

	// Registrations are embedded in events, so the total comes from an
	// aggregation over attendee counts.
	cur, err := r.db.Collection("events").Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$attendees"}}},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var agg []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &agg); err != nil {
		return nil, err
	}
	if len(agg) > 0 {
		s.Registrations = agg[0].Total
	}
	return s, nil
}
