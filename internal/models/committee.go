package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	MemberKindCommittee = "committee"
	MemberKindHOD       = "hod"
)

type CommitteeMember struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string        `bson:"name" json:"name"`
	Position   string        `bson:"position" json:"position"`
	Department string        `bson:"department,omitempty" json:"department,omitempty"`
	PhotoURL   string        `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Kind       string        `bson:"kind" json:"kind"`
	Order      int           `bson:"order" json:"order"`
	CreatedAt  *time.Time    `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt  *time.Time    `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
