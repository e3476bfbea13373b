package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"clubhub-backend/internal/models"
)

const defaultRejectionReason = "Payment receipt rejected by admin"

type PaymentReceiptStore interface {
	Insert(ctx context.Context, pr models.PaymentReceipt) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.PaymentReceipt, error)
	Replace(ctx context.Context, pr *models.PaymentReceipt) error
}

// VerificationService transitions payment receipts between Pending and
// Verified/Rejected. It covers two unconnected surfaces: the standalone
// payment_receipts ledger and the snapshot embedded in an event
// registration. Approving one does not touch the other.
type VerificationService struct {
	ledger PaymentReceiptStore
	events EventStore
	hub    Broadcaster
	log    zerolog.Logger
}

func NewVerificationService(ledger PaymentReceiptStore, events EventStore, hub Broadcaster, log zerolog.Logger) *VerificationService {
	return &VerificationService{ledger: ledger, events: events, hub: hub, log: log}
}

// Approve marks a ledger entry Verified and records the verifier.
func (s *VerificationService) Approve(ctx context.Context, id, adminID bson.ObjectID) (*models.PaymentReceipt, error) {
	pr, err := s.ledger.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, ErrReceiptNotFound
	}
	if pr.Status == models.ReceiptStatusVerified {
		return nil, &StatusConflictError{Status: pr.Status}
	}

	now := time.Now().UTC()
	pr.Status = models.ReceiptStatusVerified
	pr.VerifiedBy = &adminID
	pr.VerifiedAt = &now
	pr.RejectionReason = ""

	if err := s.ledger.Replace(ctx, pr); err != nil {
		return nil, fmt.Errorf("save payment receipt: %w", err)
	}
	s.hub.Broadcast("payments", map[string]any{"id": pr.ID.Hex(), "status": pr.Status})
	return pr, nil
}

// Reject marks a ledger entry Rejected with a reason.
func (s *VerificationService) Reject(ctx context.Context, id, adminID bson.ObjectID, reason string) (*models.PaymentReceipt, error) {
	pr, err := s.ledger.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, ErrReceiptNotFound
	}
	if pr.Status == models.ReceiptStatusRejected {
		return nil, &StatusConflictError{Status: pr.Status}
	}

	if reason == "" {
		reason = defaultRejectionReason
	}
	now := time.Now().UTC()
	pr.Status = models.ReceiptStatusRejected
	pr.VerifiedBy = &adminID
	pr.VerifiedAt = &now
	pr.RejectionReason = reason

	if err := s.ledger.Replace(ctx, pr); err != nil {
		return nil, fmt.Errorf("save payment receipt: %w", err)
	}
	s.hub.Broadcast("payments", map[string]any{"id": pr.ID.Hex(), "status": pr.Status})
	return pr, nil
}

// VerifyEmbedded transitions the snapshot embedded in an event registration.
// Only Pending snapshots can move; anything else conflicts.
func (s *VerificationService) VerifyEmbedded(ctx context.Context, eventID, userID, adminID bson.ObjectID, approve bool, reason string) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	var snap *models.PaymentReceiptSnapshot
	found := false
	for i := range event.Registrations {
		if event.Registrations[i].UserID == userID {
			snap = event.Registrations[i].PaymentReceipt
			found = true
			break
		}
	}
	if !found {
		return nil, ErrRegistrationNotFound
	}
	if snap == nil {
		return nil, ErrNoReceipt
	}
	if snap.PaymentStatus != models.ReceiptStatusPending {
		return nil, &StatusConflictError{Status: snap.PaymentStatus}
	}

	now := time.Now().UTC()
	snap.VerifiedBy = &adminID
	snap.VerifiedAt = &now
	if approve {
		snap.PaymentStatus = models.ReceiptStatusVerified
		snap.RejectionReason = ""
	} else {
		if reason == "" {
			reason = defaultRejectionReason
		}
		snap.PaymentStatus = models.ReceiptStatusRejected
		snap.RejectionReason = reason
	}
	event.UpdatedAt = &now

	if err := s.events.Replace(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	s.hub.Broadcast("events", map[string]any{
		"event_id": event.ID.Hex(),
		"action":   "receipt_" + snap.PaymentStatus,
		"user_id":  userID.Hex(),
	})
	return event, nil
}
