package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"clubhub-backend/internal/models"
)

type fakeEventStore struct {
	events       map[bson.ObjectID]*models.Event
	findErr      error
	replaceErr   error
	replaceCalls int
}

func newFakeEventStore(events ...*models.Event) *fakeEventStore {
	s := &fakeEventStore{events: make(map[bson.ObjectID]*models.Event)}
	for _, e := range events {
		s.events[e.ID] = e
	}
	return s
}

func (s *fakeEventStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Event, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.events[id], nil
}

func (s *fakeEventStore) Replace(_ context.Context, e *models.Event) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaceCalls++
	s.events[e.ID] = e
	return nil
}

type fakeUserStore struct {
	users map[bson.ObjectID]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[bson.ObjectID]*models.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	return s.users[id], nil
}

type fakePaymentStore struct {
	payments   []models.Payment
	receipts   []models.Receipt
	pdfMarks   []string
	paymentErr error
	receiptErr error
	findErr    error
}

func (s *fakePaymentStore) InsertPayment(_ context.Context, p models.Payment) error {
	if s.paymentErr != nil {
		return s.paymentErr
	}
	s.payments = append(s.payments, p)
	return nil
}

func (s *fakePaymentStore) InsertReceipt(_ context.Context, r models.Receipt) error {
	if s.receiptErr != nil {
		return s.receiptErr
	}
	s.receipts = append(s.receipts, r)
	return nil
}

func (s *fakePaymentStore) FindPaymentByUserEvent(_ context.Context, userID, eventID bson.ObjectID) (*models.Payment, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := range s.payments {
		if s.payments[i].UserID == userID && s.payments[i].EventID == eventID {
			return &s.payments[i], nil
		}
	}
	return nil, nil
}

func (s *fakePaymentStore) MarkPDFGenerated(_ context.Context, receiptNumber string, _ time.Time) error {
	s.pdfMarks = append(s.pdfMarks, receiptNumber)
	return nil
}

type fakeMirrorStore struct {
	inserted  []models.ShadowRegistration
	deleted   [][2]any
	insertErr error
	deleteErr error
}

func (s *fakeMirrorStore) Insert(_ context.Context, sh models.ShadowRegistration) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, sh)
	return nil
}

func (s *fakeMirrorStore) Delete(_ context.Context, eventID bson.ObjectID, index int) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, [2]any{eventID, index})
	return nil
}

type fakeHub struct {
	messages []struct {
		Channel string
		Payload any
	}
}

func (h *fakeHub) Broadcast(channel string, payload any) {
	h.messages = append(h.messages, struct {
		Channel string
		Payload any
	}{channel, payload})
}

type fakeLedgerStore struct {
	receipts   map[bson.ObjectID]*models.PaymentReceipt
	inserted   []models.PaymentReceipt
	insertErr  error
	replaceErr error
}

func newFakeLedgerStore(receipts ...*models.PaymentReceipt) *fakeLedgerStore {
	s := &fakeLedgerStore{receipts: make(map[bson.ObjectID]*models.PaymentReceipt)}
	for _, r := range receipts {
		s.receipts[r.ID] = r
	}
	return s
}

func (s *fakeLedgerStore) Insert(_ context.Context, pr models.PaymentReceipt) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, pr)
	s.receipts[pr.ID] = &pr
	return nil
}

func (s *fakeLedgerStore) FindByID(_ context.Context, id bson.ObjectID) (*models.PaymentReceipt, error) {
	return s.receipts[id], nil
}

func (s *fakeLedgerStore) Replace(_ context.Context, pr *models.PaymentReceipt) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.receipts[pr.ID] = pr
	return nil
}
