package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"clubhub-backend/internal/models"
)

func pendingLedgerEntry() *models.PaymentReceipt {
	return &models.PaymentReceipt{
		ID:        bson.NewObjectID(),
		UserID:    bson.NewObjectID(),
		EventID:   bson.NewObjectID(),
		Amount:    50,
		Currency:  models.DefaultCurrency,
		Status:    models.ReceiptStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func newVerificationService(ledger *fakeLedgerStore, events *fakeEventStore) (*VerificationService, *fakeHub) {
	hub := &fakeHub{}
	return NewVerificationService(ledger, events, hub, zerolog.Nop()), hub
}

func TestApprovePendingEntry(t *testing.T) {
	entry := pendingLedgerEntry()
	adminID := bson.NewObjectID()
	svc, hub := newVerificationService(newFakeLedgerStore(entry), newFakeEventStore())

	out, err := svc.Approve(context.Background(), entry.ID, adminID)
	require.NoError(t, err)
	assert.Equal(t, models.ReceiptStatusVerified, out.Status)
	require.NotNil(t, out.VerifiedBy)
	assert.Equal(t, adminID, *out.VerifiedBy)
	assert.NotNil(t, out.VerifiedAt)
	assert.Empty(t, out.RejectionReason)
	assert.NotEmpty(t, hub.messages)
}

func TestApproveClearsPriorRejection(t *testing.T) {
	entry := pendingLedgerEntry()
	entry.Status = models.ReceiptStatusRejected
	entry.RejectionReason = "blurry photo"
	svc, _ := newVerificationService(newFakeLedgerStore(entry), newFakeEventStore())

	out, err := svc.Approve(context.Background(), entry.ID, bson.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, models.ReceiptStatusVerified, out.Status)
	assert.Empty(t, out.RejectionReason)
}

func TestApproveAlreadyVerifiedConflicts(t *testing.T) {
	entry := pendingLedgerEntry()
	firstAdmin := bson.NewObjectID()
	verifiedAt := time.Now().UTC().Add(-time.Hour)
	entry.Status = models.ReceiptStatusVerified
	entry.VerifiedBy = &firstAdmin
	entry.VerifiedAt = &verifiedAt
	ledger := newFakeLedgerStore(entry)
	svc, _ := newVerificationService(ledger, newFakeEventStore())

	_, err := svc.Approve(context.Background(), entry.ID, bson.NewObjectID())
	var conflict *StatusConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.ReceiptStatusVerified, conflict.Status)

	stored := ledger.receipts[entry.ID]
	assert.Equal(t, firstAdmin, *stored.VerifiedBy)
	assert.Equal(t, verifiedAt, *stored.VerifiedAt)
}

func TestRejectUsesDefaultReason(t *testing.T) {
	entry := pendingLedgerEntry()
	svc, _ := newVerificationService(newFakeLedgerStore(entry), newFakeEventStore())

	out, err := svc.Reject(context.Background(), entry.ID, bson.NewObjectID(), "")
	require.NoError(t, err)
	assert.Equal(t, models.ReceiptStatusRejected, out.Status)
	assert.Equal(t, "Payment receipt rejected by admin", out.RejectionReason)
}

func TestRejectKeepsGivenReason(t *testing.T) {
	entry := pendingLedgerEntry()
	svc, _ := newVerificationService(newFakeLedgerStore(entry), newFakeEventStore())

	out, err := svc.Reject(context.Background(), entry.ID, bson.NewObjectID(), "amount does not match")
	require.NoError(t, err)
	assert.Equal(t, "amount does not match", out.RejectionReason)
}

func TestRejectAlreadyRejectedConflicts(t *testing.T) {
	entry := pendingLedgerEntry()
	entry.Status = models.ReceiptStatusRejected
	svc, _ := newVerificationService(newFakeLedgerStore(entry), newFakeEventStore())

	_, err := svc.Reject(context.Background(), entry.ID, bson.NewObjectID(), "again")
	var conflict *StatusConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.ReceiptStatusRejected, conflict.Status)
}

func TestLedgerEntryNotFound(t *testing.T) {
	svc, _ := newVerificationService(newFakeLedgerStore(), newFakeEventStore())

	_, err := svc.Approve(context.Background(), bson.NewObjectID(), bson.NewObjectID())
	assert.ErrorIs(t, err, ErrReceiptNotFound)

	_, err = svc.Reject(context.Background(), bson.NewObjectID(), bson.NewObjectID(), "")
	assert.ErrorIs(t, err, ErrReceiptNotFound)
}

func TestVerifyEmbeddedApprove(t *testing.T) {
	event, userID := eventWithSnapshot(models.ReceiptStatusPending)
	adminID := bson.NewObjectID()
	events := newFakeEventStore(event)
	svc, hub := newVerificationService(newFakeLedgerStore(), events)

	out, err := svc.VerifyEmbedded(context.Background(), event.ID, userID, adminID, true, "")
	require.NoError(t, err)

	snap := out.Registrations[0].PaymentReceipt
	assert.Equal(t, models.ReceiptStatusVerified, snap.PaymentStatus)
	require.NotNil(t, snap.VerifiedBy)
	assert.Equal(t, adminID, *snap.VerifiedBy)
	assert.NotNil(t, out.UpdatedAt)
	assert.NotEmpty(t, hub.messages)
}

func TestVerifyEmbeddedReject(t *testing.T) {
	event, userID := eventWithSnapshot(models.ReceiptStatusPending)
	svc, _ := newVerificationService(newFakeLedgerStore(), newFakeEventStore(event))

	out, err := svc.VerifyEmbedded(context.Background(), event.ID, userID, bson.NewObjectID(), false, "")
	require.NoError(t, err)

	snap := out.Registrations[0].PaymentReceipt
	assert.Equal(t, models.ReceiptStatusRejected, snap.PaymentStatus)
	assert.Equal(t, "Payment receipt rejected by admin", snap.RejectionReason)
}

func TestVerifyEmbeddedOnlyMovesPending(t *testing.T) {
	for _, status := range []string{models.ReceiptStatusVerified, models.ReceiptStatusRejected} {
		event, userID := eventWithSnapshot(status)
		svc, _ := newVerificationService(newFakeLedgerStore(), newFakeEventStore(event))

		_, err := svc.VerifyEmbedded(context.Background(), event.ID, userID, bson.NewObjectID(), true, "")
		var conflict *StatusConflictError
		require.ErrorAs(t, err, &conflict, "status %s", status)
		assert.Equal(t, status, conflict.Status)
	}
}

func TestVerifyEmbeddedMissingPieces(t *testing.T) {
	event, _ := eventWithSnapshot(models.ReceiptStatusPending)
	free := testEvent(nil)
	bareUser := bson.NewObjectID()
	free.RegisteredUsers = []bson.ObjectID{bareUser}
	free.Registrations = []models.Registration{{UserID: bareUser, Name: "Free Rider"}}
	svc, _ := newVerificationService(newFakeLedgerStore(), newFakeEventStore(event, free))

	_, err := svc.VerifyEmbedded(context.Background(), bson.NewObjectID(), bareUser, bson.NewObjectID(), true, "")
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.VerifyEmbedded(context.Background(), event.ID, bson.NewObjectID(), bson.NewObjectID(), true, "")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)

	_, err = svc.VerifyEmbedded(context.Background(), free.ID, bareUser, bson.NewObjectID(), true, "")
	assert.ErrorIs(t, err, ErrNoReceipt)
}
