package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"clubhub-backend/database"
	"clubhub-backend/internal/models"
)

type CommitteeRepository struct {
	col *mongo.Collection
}

func NewCommitteeRepository() *CommitteeRepository {
	return &CommitteeRepository{col: database.DB.Collection("committee_members")}
}

func (r *CommitteeRepository) Insert(ctx context.Context, m models.CommitteeMember) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *CommitteeRepository) ListByKind(ctx context.Context, kind string) ([]models.CommitteeMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"kind": kind}, opts)
	if err != nil {
		return nil, fmt.Errorf("list committee members: %w", err)
	}
	defer cur.Close(ctx)

	var members []models.CommitteeMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("decode committee members: %w", err)
	}
	return members, nil
}

func (r *CommitteeRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CommitteeRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
