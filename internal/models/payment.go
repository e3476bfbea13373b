package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

const DefaultCurrency = "MYR"

type Payment struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        bson.ObjectID `bson:"user_id" json:"user_id"`
	EventID       bson.ObjectID `bson:"event_id" json:"event_id"`
	Amount        float64       `bson:"amount" json:"amount"`
	Currency      string        `bson:"currency" json:"currency"`
	TransactionID string        `bson:"transaction_id" json:"transaction_id"`
	Status        string        `bson:"status" json:"status"`
	PaymentMethod string        `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// Receipt is the denormalized proof-of-payment record. It snapshots user and
// event details so later edits to either do not rewrite history.
type Receipt struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiptNumber  string        `bson:"receipt_number" json:"receipt_number"`
	PaymentID      bson.ObjectID `bson:"payment_id" json:"payment_id"`
	UserID         bson.ObjectID `bson:"user_id" json:"user_id"`
	UserName       string        `bson:"user_name" json:"user_name"`
	UserEmail      string        `bson:"user_email" json:"user_email"`
	EventID        bson.ObjectID `bson:"event_id" json:"event_id"`
	EventTitle     string        `bson:"event_title" json:"event_title"`
	EventDate      time.Time     `bson:"event_date" json:"event_date"`
	Amount         float64       `bson:"amount" json:"amount"`
	Currency       string        `bson:"currency" json:"currency"`
	IssuedAt       time.Time     `bson:"issued_at" json:"issued_at"`
	PDFGeneratedAt *time.Time    `bson:"pdf_generated_at,omitempty" json:"pdf_generated_at,omitempty"`
}
