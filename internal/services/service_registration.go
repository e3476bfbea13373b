package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"clubhub-backend/internal/dto"
	"clubhub-backend/internal/models"
)

type EventStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error)
	Replace(ctx context.Context, e *models.Event) error
}

type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
}

type PaymentStore interface {
	InsertPayment(ctx context.Context, p models.Payment) error
	InsertReceipt(ctx context.Context, r models.Receipt) error
	FindPaymentByUserEvent(ctx context.Context, userID, eventID bson.ObjectID) (*models.Payment, error)
	MarkPDFGenerated(ctx context.Context, receiptNumber string, at time.Time) error
}

type MirrorStore interface {
	Insert(ctx context.Context, s models.ShadowRegistration) error
	Delete(ctx context.Context, eventID bson.ObjectID, index int) error
}

type Broadcaster interface {
	Broadcast(channel string, payload any)
}

// RegistrationResult is what a successful registration hands back to the
// caller: the updated event, the embedded receipt snapshot (nil when the
// event was free and nothing was uploaded) and whether a PDF was
// pre-generated.
type RegistrationResult struct {
	Event        *models.Event
	Receipt      *models.PaymentReceiptSnapshot
	PDFGenerated bool
}

// RegistrationService runs the event registration workflow. The event save
// is the only required write; payment bookkeeping, the shadow-collection
// mirror, the live broadcast and PDF pre-generation are all best-effort and
// never fail a registration.
//
// The duplicate check is a linear scan before the append, not a unique
// index: two concurrent registrations for the same (event, user) can in
// principle both pass the scan. Accepted as-is; registrations must go
// through this service.
type RegistrationService struct {
	events   EventStore
	users    UserStore
	payments PaymentStore
	ledger   PaymentReceiptStore
	mirror   MirrorStore
	hub      Broadcaster
	pdf      func(ReceiptRenderData) ([]byte, error)
	log      zerolog.Logger
}

func NewRegistrationService(events EventStore, users UserStore, payments PaymentStore, ledger PaymentReceiptStore, mirror MirrorStore, hub Broadcaster, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		events:   events,
		users:    users,
		payments: payments,
		ledger:   ledger,
		mirror:   mirror,
		hub:      hub,
		pdf:      BuildReceiptPDF,
		log:      log,
	}
}

// NewReceiptNumber returns an identifier like REC-20250901-4F7A2C.
func NewReceiptNumber(now time.Time) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("REC-%s-%s", now.Format("20060102"), raw[:6])
}

// NewTransactionID returns an identifier like TXN-1725148800000-9A3F02BC.
func NewTransactionID(now time.Time) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("TXN-%d-%s", now.UnixMilli(), strings.ToUpper(hex.EncodeToString(buf)))
}

// paymentTerms resolves the amount due for an event. Both the current
// requires_payment/payment_amount pair and the legacy fee field are checked
// independently: a positive fee forces payment on its own.
func paymentTerms(e *models.Event) (amount float64, required bool) {
	amount = e.PaymentAmount
	if amount == 0 {
		amount = e.Fee
	}
	required = (e.RequiresPayment && e.PaymentAmount > 0) || e.Fee > 0
	return amount, required
}

func (s *RegistrationService) Register(ctx context.Context, eventID, userID bson.ObjectID, form dto.RegisterForm, uploadedURL string) (*RegistrationResult, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if event.Cancelled {
		return nil, ErrEventCancelled
	}
	for _, id := range event.RegisteredUsers {
		if id == userID {
			return nil, ErrAlreadyRegistered
		}
	}

	now := time.Now().UTC()
	amount, required := paymentTerms(event)

	var snapshot *models.PaymentReceiptSnapshot
	var txnID string
	if required && amount > 0 {
		receiptNumber := NewReceiptNumber(now)

		// One Payment per (user, event): a re-registration after an
		// unregister reuses the original transaction instead of minting a
		// second one. The lookup is best-effort like the rest of the
		// bookkeeping.
		existing, err := s.payments.FindPaymentByUserEvent(ctx, userID, eventID)
		if err != nil {
			s.log.Warn().Err(err).Str("event_id", eventID.Hex()).Msg("payment lookup failed, continuing registration")
		}
		if existing != nil {
			txnID = existing.TransactionID
		} else {
			txnID = NewTransactionID(now)

			payment := models.Payment{
				ID:            bson.NewObjectID(),
				UserID:        userID,
				EventID:       eventID,
				Amount:        amount,
				Currency:      models.DefaultCurrency,
				TransactionID: txnID,
				Status:        models.PaymentStatusPending,
				PaymentMethod: form.PaymentMethod,
				CreatedAt:     now,
			}
			if err := s.payments.InsertPayment(ctx, payment); err != nil {
				// Payment bookkeeping never blocks a registration.
				s.log.Warn().Err(err).Str("event_id", eventID.Hex()).Msg("payment insert failed, continuing registration")
			} else {
				receipt := models.Receipt{
					ID:            bson.NewObjectID(),
					ReceiptNumber: receiptNumber,
					PaymentID:     payment.ID,
					UserID:        userID,
					UserName:      user.Name,
					UserEmail:     user.Email,
					EventID:       eventID,
					EventTitle:    event.Title,
					EventDate:     event.Date,
					Amount:        amount,
					Currency:      models.DefaultCurrency,
					IssuedAt:      now,
				}
				if err := s.payments.InsertReceipt(ctx, receipt); err != nil {
					s.log.Warn().Err(err).Str("receipt_number", receiptNumber).Msg("receipt insert failed, continuing registration")
				}
			}
		}

		snapshot = &models.PaymentReceiptSnapshot{
			ReceiptNumber: receiptNumber,
			ReceiptURL:    uploadedURL,
			Amount:        amount,
			PaymentMethod: form.PaymentMethod,
			PaymentStatus: models.ReceiptStatusPending,
		}
	} else if uploadedURL != "" {
		// A receipt was uploaded for a free event; keep a minimal snapshot
		// so the upload is never orphaned.
		snapshot = &models.PaymentReceiptSnapshot{
			ReceiptNumber: NewReceiptNumber(now),
			ReceiptURL:    uploadedURL,
			PaymentMethod: form.PaymentMethod,
			PaymentStatus: models.ReceiptStatusPending,
		}
	}

	registration := models.Registration{
		UserID:         userID,
		Name:           user.Name,
		Email:          user.Email,
		MatricNumber:   user.MatricNumber,
		Phone:          form.Phone,
		RegisteredAt:   now,
		PaymentReceipt: snapshot,
	}

	event.Registrations = append(event.Registrations, registration)
	event.RegisteredUsers = append(event.RegisteredUsers, userID)
	event.Attendees = len(event.RegisteredUsers)
	event.UpdatedAt = &now

	if err := s.events.Replace(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}

	index := len(event.Registrations) - 1
	mirror := models.ShadowRegistration{
		ID:           bson.NewObjectID(),
		EventID:      eventID,
		Index:        index,
		UserID:       userID,
		EventTitle:   event.Title,
		Name:         user.Name,
		Email:        user.Email,
		RegisteredAt: now,
	}
	if snapshot != nil {
		mirror.ReceiptNumber = snapshot.ReceiptNumber
	}
	if err := s.mirror.Insert(ctx, mirror); err != nil {
		s.log.Warn().Err(err).Str("event_id", eventID.Hex()).Msg("shadow registration insert failed")
	}

	// The admin ledger tracks the same verification fact as the embedded
	// snapshot but is not transactionally linked to it. The unique
	// (user_id, event_id) index absorbs re-registrations.
	if snapshot != nil {
		entry := models.PaymentReceipt{
			ID:          bson.NewObjectID(),
			UserID:      userID,
			EventID:     eventID,
			Amount:      snapshot.Amount,
			Currency:    models.DefaultCurrency,
			PaymentType: form.PaymentMethod,
			ReceiptURL:  uploadedURL,
			Status:      models.ReceiptStatusPending,
			CreatedAt:   now,
		}
		if err := s.ledger.Insert(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("event_id", eventID.Hex()).Msg("payment receipt ledger insert failed")
		}
	}

	s.hub.Broadcast("events", eventPayload(event.ID, "registration_created", event.Attendees))

	result := &RegistrationResult{Event: event, Receipt: snapshot}

	if required && amount > 0 && snapshot != nil {
		data := renderDataFromSnapshot(event, &registration)
		data.TransactionID = txnID
		if _, err := s.pdf(data); err != nil {
			s.log.Warn().Err(err).Str("receipt_number", snapshot.ReceiptNumber).Msg("receipt PDF pre-generation failed")
		} else {
			// The snapshot carries the transaction id only once a PDF has
			// actually been produced for it.
			snapshot.TransactionID = txnID
			if err := s.payments.MarkPDFGenerated(ctx, snapshot.ReceiptNumber, now); err != nil {
				s.log.Warn().Err(err).Msg("marking receipt PDF generation failed")
			}
			if err := s.events.Replace(ctx, event); err != nil {
				s.log.Warn().Err(err).Msg("persisting stamped snapshot failed")
			} else {
				result.PDFGenerated = true
			}
		}
	}

	return result, nil
}

// Unregister removes the caller from the event. Missing events are an
// error; a caller who was never registered is a silent no-op.
func (s *RegistrationService) Unregister(ctx context.Context, eventID, userID bson.ObjectID) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	index := -1
	for i, reg := range event.Registrations {
		if reg.UserID == userID {
			index = i
			break
		}
	}
	if index >= 0 {
		event.Registrations = append(event.Registrations[:index], event.Registrations[index+1:]...)
	}

	kept := event.RegisteredUsers[:0]
	for _, id := range event.RegisteredUsers {
		if id != userID {
			kept = append(kept, id)
		}
	}
	event.RegisteredUsers = kept
	event.Attendees = len(event.RegisteredUsers)
	now := time.Now().UTC()
	event.UpdatedAt = &now

	if err := s.events.Replace(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}

	if index >= 0 {
		if err := s.mirror.Delete(ctx, eventID, index); err != nil {
			s.log.Warn().Err(err).Str("event_id", eventID.Hex()).Msg("shadow registration delete failed")
		}
	}

	s.hub.Broadcast("events", eventPayload(event.ID, "registration_removed", event.Attendees))
	return event, nil
}

func eventPayload(eventID bson.ObjectID, action string, attendees int) map[string]any {
	return map[string]any{
		"event_id":  eventID.Hex(),
		"action":    action,
		"attendees": attendees,
	}
}
