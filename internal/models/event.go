package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	EventTypeEvent        = "event"
	EventTypeAnnouncement = "announcement"
	EventTypeActivity     = "activity"
)

const (
	ReceiptStatusPending  = "Pending"
	ReceiptStatusVerified = "Verified"
	ReceiptStatusRejected = "Rejected"
)

type Event struct {
	ID              bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title           string          `bson:"title" json:"title"`
	Description     string          `bson:"description" json:"description"`
	Date            time.Time       `bson:"date" json:"date"`
	Location        string          `bson:"location,omitempty" json:"location,omitempty"`
	Category        string          `bson:"category,omitempty" json:"category,omitempty"`
	Type            string          `bson:"type" json:"type"`
	IsPublic        bool            `bson:"is_public" json:"is_public"`
	RequiresPayment bool            `bson:"requires_payment" json:"requires_payment"`
	PaymentAmount   float64         `bson:"payment_amount,omitempty" json:"payment_amount,omitempty"`
	// Fee is the amount field of the old event schema. A positive fee still
	// forces payment even when requires_payment is unset.
	Fee             float64         `bson:"fee,omitempty" json:"fee,omitempty"`
	Cancelled       bool            `bson:"cancelled" json:"cancelled"`
	RegisteredUsers []bson.ObjectID `bson:"registered_users" json:"registered_users"`
	Attendees       int             `bson:"attendees" json:"attendees"`
	Registrations   []Registration  `bson:"registrations" json:"registrations"`
	CreatedBy       bson.ObjectID   `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt       *time.Time      `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt       *time.Time      `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Registration is embedded in its Event and snapshots the registrant's
// details at registration time.
type Registration struct {
	UserID         bson.ObjectID           `bson:"user_id" json:"user_id"`
	Name           string                  `bson:"name" json:"name"`
	Email          string                  `bson:"email" json:"email"`
	MatricNumber   string                  `bson:"matric_number,omitempty" json:"matric_number,omitempty"`
	Phone          string                  `bson:"phone,omitempty" json:"phone,omitempty"`
	RegisteredAt   time.Time               `bson:"registered_at" json:"registered_at"`
	PaymentReceipt *PaymentReceiptSnapshot `bson:"payment_receipt,omitempty" json:"payment_receipt,omitempty"`
}

type PaymentReceiptSnapshot struct {
	ReceiptNumber   string         `bson:"receipt_number" json:"receipt_number"`
	ReceiptURL      string         `bson:"receipt_url,omitempty" json:"receipt_url,omitempty"`
	Amount          float64        `bson:"amount" json:"amount"`
	PaymentMethod   string         `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	PaymentStatus   string         `bson:"payment_status" json:"payment_status"`
	TransactionID   string         `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	VerifiedBy      *bson.ObjectID `bson:"verified_by,omitempty" json:"verified_by,omitempty"`
	VerifiedAt      *time.Time     `bson:"verified_at,omitempty" json:"verified_at,omitempty"`
	RejectionReason string         `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
}

// ShadowRegistration is the denormalized mirror kept in the standalone
// "registrations" collection for alternate querying. Writes to it are
// best-effort only.
type ShadowRegistration struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID       bson.ObjectID `bson:"event_id" json:"event_id"`
	Index         int           `bson:"index" json:"index"`
	UserID        bson.ObjectID `bson:"user_id" json:"user_id"`
	EventTitle    string        `bson:"event_title" json:"event_title"`
	Name          string        `bson:"name" json:"name"`
	Email         string        `bson:"email" json:"email"`
	ReceiptNumber string        `bson:"receipt_number,omitempty" json:"receipt_number,omitempty"`
	RegisteredAt  time.Time     `bson:"registered_at" json:"registered_at"`
}
