package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"clubhub-backend/internal/models"
)

func eventWithSnapshot(status string) (*models.Event, bson.ObjectID) {
	userID := bson.NewObjectID()
	now := time.Now().UTC()
	e := testEvent(func(e *models.Event) {
		e.RequiresPayment = true
		e.PaymentAmount = 50
		e.RegisteredUsers = []bson.ObjectID{userID}
		e.Attendees = 1
		e.Registrations = []models.Registration{{
			UserID:       userID,
			Name:         "Aina Binti Rahman",
			Email:        "aina@student.example.edu",
			RegisteredAt: now,
			PaymentReceipt: &models.PaymentReceiptSnapshot{
				ReceiptNumber: "REC-20260901-ABC123",
				ReceiptURL:    "/uploads/receipts/x.png",
				Amount:        50,
				PaymentMethod: "bank_transfer",
				PaymentStatus: status,
			},
		}}
	})
	return e, userID
}

func newReceiptService(events *fakeEventStore) *ReceiptService {
	return NewReceiptService(events, "http://localhost:8000", zerolog.Nop())
}

func TestRenderPDFRequiresVerified(t *testing.T) {
	for _, status := range []string{models.ReceiptStatusPending, models.ReceiptStatusRejected} {
		event, userID := eventWithSnapshot(status)
		svc := newReceiptService(newFakeEventStore(event))

		_, err := svc.Render(context.Background(), event.ID, userID, FormatPDF)
		var nv *NotVerifiedError
		require.ErrorAs(t, err, &nv, "status %s", status)
		assert.Equal(t, status, nv.Status)
	}
}

func TestRenderPDFVerified(t *testing.T) {
	event, userID := eventWithSnapshot(models.ReceiptStatusVerified)
	svc := newReceiptService(newFakeEventStore(event))

	out, err := svc.Render(context.Background(), event.ID, userID, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.Equal(t, "REC-20260901-ABC123.pdf", out.Filename)
	require.True(t, len(out.Content) > 4)
	assert.Equal(t, "%PDF", string(out.Content[:4]))
}

func TestRenderHTMLHasNoGate(t *testing.T) {
	event, userID := eventWithSnapshot(models.ReceiptStatusPending)
	svc := newReceiptService(newFakeEventStore(event))

	out, err := svc.Render(context.Background(), event.ID, userID, FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", out.ContentType)
	assert.Contains(t, string(out.Content), "REC-20260901-ABC123")
	assert.Contains(t, string(out.Content), event.Title)
}

func TestRenderMissingPieces(t *testing.T) {
	event, userID := eventWithSnapshot(models.ReceiptStatusVerified)
	free := testEvent(nil)
	noReceiptUser := bson.NewObjectID()
	free.RegisteredUsers = []bson.ObjectID{noReceiptUser}
	free.Registrations = []models.Registration{{UserID: noReceiptUser, Name: "No Receipt"}}
	svc := newReceiptService(newFakeEventStore(event, free))

	_, err := svc.Render(context.Background(), bson.NewObjectID(), userID, FormatPDF)
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.Render(context.Background(), event.ID, bson.NewObjectID(), FormatPDF)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)

	_, err = svc.Render(context.Background(), free.ID, noReceiptUser, FormatPDF)
	assert.ErrorIs(t, err, ErrNoReceipt)
}

func TestShareRoundTrip(t *testing.T) {
	event, userID := eventWithSnapshot(models.ReceiptStatusPending)
	svc := newReceiptService(newFakeEventStore(event))

	token, url, err := svc.Share(context.Background(), event.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/receipts/shared/"+token, url)

	raw, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%s:%s:REC-20260901-ABC123", event.ID.Hex(), userID.Hex()), string(raw))

	shared, err := svc.ViewShared(context.Background(), token)
	require.NoError(t, err)

	direct, err := svc.Render(context.Background(), event.ID, userID, FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, direct.Content, shared.Content)
}

func TestViewSharedRejectsBadTokens(t *testing.T) {
	event, userID := eventWithSnapshot(models.ReceiptStatusPending)
	svc := newReceiptService(newFakeEventStore(event))

	cases := map[string]string{
		"not base64":       "%%%not-base64%%%",
		"too few parts":    base64.URLEncoding.EncodeToString([]byte("onlyonepart")),
		"bad event id":     base64.URLEncoding.EncodeToString([]byte("zzz:" + userID.Hex() + ":REC-20260901-ABC123")),
		"bad user id":      base64.URLEncoding.EncodeToString([]byte(event.ID.Hex() + ":zzz:REC-20260901-ABC123")),
		"receipt mismatch": base64.URLEncoding.EncodeToString([]byte(event.ID.Hex() + ":" + userID.Hex() + ":REC-20260901-WRONG1")),
	}
	for name, token := range cases {
		_, err := svc.ViewShared(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidShareToken, name)
	}
}

func TestViewSharedUnknownEvent(t *testing.T) {
	svc := newReceiptService(newFakeEventStore())
	token := base64.URLEncoding.EncodeToString([]byte(bson.NewObjectID().Hex() + ":" + bson.NewObjectID().Hex() + ":REC-20260901-ABC123"))
	_, err := svc.ViewShared(context.Background(), token)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
