package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PaymentReceipt is the admin verification ledger. It tracks the same
// verification fact as the snapshot embedded in a Registration but lives in
// its own collection and is not transactionally linked to it.
type PaymentReceipt struct {
	ID              bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID          bson.ObjectID  `bson:"user_id" json:"user_id"`
	EventID         bson.ObjectID  `bson:"event_id" json:"event_id"`
	Amount          float64        `bson:"amount" json:"amount"`
	Currency        string         `bson:"currency" json:"currency"`
	PaymentType     string         `bson:"payment_type,omitempty" json:"payment_type,omitempty"`
	ReceiptURL      string         `bson:"receipt_url,omitempty" json:"receipt_url,omitempty"`
	Status          string         `bson:"status" json:"status"`
	VerifiedBy      *bson.ObjectID `bson:"verified_by,omitempty" json:"verified_by,omitempty"`
	VerifiedAt      *time.Time     `bson:"verified_at,omitempty" json:"verified_at,omitempty"`
	RejectionReason string         `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `bson:"created_at" json:"created_at"`
}
