package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"clubhub-backend/internal/models"
)

const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// RenderedReceipt is a ready-to-serve document.
type RenderedReceipt struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReceiptService renders receipt documents from the snapshot embedded in a
// registration and produces shareable links for them.
type ReceiptService struct {
	events  EventStore
	baseURL string
	log     zerolog.Logger
}

func NewReceiptService(events EventStore, baseURL string, log zerolog.Logger) *ReceiptService {
	return &ReceiptService{events: events, baseURL: baseURL, log: log}
}

func (s *ReceiptService) findSnapshot(ctx context.Context, eventID, userID bson.ObjectID) (*models.Event, *models.Registration, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	if event == nil {
		return nil, nil, ErrEventNotFound
	}
	for i := range event.Registrations {
		if event.Registrations[i].UserID == userID {
			if event.Registrations[i].PaymentReceipt == nil {
				return nil, nil, ErrNoReceipt
			}
			return event, &event.Registrations[i], nil
		}
	}
	return nil, nil, ErrRegistrationNotFound
}

// Render produces the receipt document for (event, user). PDF is the
// default and is only issued for Verified receipts; if PDF rendering itself
// fails the HTML variant is served instead of an error. HTML is rendered
// directly with no verification gate.
func (s *ReceiptService) Render(ctx context.Context, eventID, userID bson.ObjectID, format string) (*RenderedReceipt, error) {
	event, reg, err := s.findSnapshot(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	data := renderDataFromSnapshot(event, reg)

	if format == FormatHTML {
		return s.renderHTML(data)
	}

	if reg.PaymentReceipt.PaymentStatus != models.ReceiptStatusVerified {
		return nil, &NotVerifiedError{Status: reg.PaymentReceipt.PaymentStatus}
	}

	content, err := BuildReceiptPDF(data)
	if err != nil {
		s.log.Warn().Err(err).Str("receipt_number", data.ReceiptNumber).Msg("PDF rendering failed, falling back to HTML")
		return s.renderHTML(data)
	}
	return &RenderedReceipt{
		Content:     content,
		ContentType: "application/pdf",
		Filename:    data.ReceiptNumber + ".pdf",
	}, nil
}

func (s *ReceiptService) renderHTML(data ReceiptRenderData) (*RenderedReceipt, error) {
	content, err := BuildReceiptHTML(data)
	if err != nil {
		return nil, err
	}
	return &RenderedReceipt{
		Content:     content,
		ContentType: "text/html; charset=utf-8",
		Filename:    data.ReceiptNumber + ".html",
	}, nil
}

// Share encodes eventId:userId:receiptNumber into a reversible token. The
// token is not signed: anyone holding the three identifiers can rebuild it.
// Known weakness, kept for link compatibility.
func (s *ReceiptService) Share(ctx context.Context, eventID, userID bson.ObjectID) (token, url string, err error) {
	_, reg, err := s.findSnapshot(ctx, eventID, userID)
	if err != nil {
		return "", "", err
	}
	raw := fmt.Sprintf("%s:%s:%s", eventID.Hex(), userID.Hex(), reg.PaymentReceipt.ReceiptNumber)
	token = base64.URLEncoding.EncodeToString([]byte(raw))
	return token, s.baseURL + "/receipts/shared/" + token, nil
}

// ViewShared decodes a share token and renders the HTML receipt for anyone
// holding the link.
func (s *ReceiptService) ViewShared(ctx context.Context, token string) (*RenderedReceipt, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidShareToken
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return nil, ErrInvalidShareToken
	}
	eventID, err := bson.ObjectIDFromHex(parts[0])
	if err != nil {
		return nil, ErrInvalidShareToken
	}
	userID, err := bson.ObjectIDFromHex(parts[1])
	if err != nil {
		return nil, ErrInvalidShareToken
	}

	event, reg, err := s.findSnapshot(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if reg.PaymentReceipt.ReceiptNumber != parts[2] {
		return nil, ErrInvalidShareToken
	}
	return s.renderHTML(renderDataFromSnapshot(event, reg))
}
