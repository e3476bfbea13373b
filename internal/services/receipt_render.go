package services

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/go-pdf/fpdf"

	"clubhub-backend/internal/models"
)

// ReceiptRenderData is the flat field set both document variants print.
type ReceiptRenderData struct {
	ReceiptNumber string
	PaymentDate   time.Time
	PayerName     string
	MatricNumber  string
	Email         string
	EventTitle    string
	EventDate     time.Time
	PaymentMethod string
	TransactionID string
	Status        string
	Amount        float64
	Currency      string
}

func renderDataFromSnapshot(event *models.Event, reg *models.Registration) ReceiptRenderData {
	snap := reg.PaymentReceipt
	return ReceiptRenderData{
		ReceiptNumber: snap.ReceiptNumber,
		PaymentDate:   reg.RegisteredAt,
		PayerName:     reg.Name,
		MatricNumber:  reg.MatricNumber,
		Email:         reg.Email,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		PaymentMethod: snap.PaymentMethod,
		TransactionID: snap.TransactionID,
		Status:        snap.PaymentStatus,
		Amount:        snap.Amount,
		Currency:      models.DefaultCurrency,
	}
}

// BuildReceiptPDF renders the fixed one-page official receipt.
func BuildReceiptPDF(data ReceiptRenderData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt "+data.ReceiptNumber, false)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 10, "ClubHub Student Club", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, "Official Payment Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetDrawColor(30, 41, 59)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	row("Receipt No.", data.ReceiptNumber)
	row("Payment Date", data.PaymentDate.Format("2 January 2006"))
	row("Name", data.PayerName)
	if data.MatricNumber != "" {
		row("Matric No.", data.MatricNumber)
	}
	row("Email", data.Email)
	row("Event", data.EventTitle)
	row("Event Date", data.EventDate.Format("2 January 2006"))
	if data.PaymentMethod != "" {
		row("Payment Method", data.PaymentMethod)
	}
	if data.TransactionID != "" {
		row("Transaction ID", data.TransactionID)
	}
	pdf.Ln(4)

	// Verification badge
	if data.Status == models.ReceiptStatusVerified {
		pdf.SetFillColor(220, 252, 231)
		pdf.SetTextColor(22, 101, 52)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 8, "PAYMENT VERIFIED", "1", 1, "C", true, 0, "")
	}
	pdf.Ln(4)

	// Amount box
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 12, fmt.Sprintf("Amount Paid: %s %.2f", data.Currency, data.Amount), "", 1, "C", true, 0, "")

	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Ln(8)
	pdf.CellFormat(0, 5, "This receipt is computer generated and valid without a signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

var receiptHTMLTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.ReceiptNumber}}</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 640px; margin: 24px auto; color: #1e293b;">
  <div style="text-align: center; border-bottom: 2px solid #1e293b; padding-bottom: 12px;">
    <h1 style="margin: 0;">ClubHub Student Club</h1>
    <p style="margin: 4px 0; color: #64748b;">Official Payment Receipt</p>
  </div>
  <table style="width: 100%; margin-top: 16px; border-collapse: collapse;">
    <tr><td style="padding: 6px 0; font-weight: bold; width: 40%;">Receipt No.</td><td>{{.ReceiptNumber}}</td></tr>
    <tr><td style="padding: 6px 0; font-weight: bold;">Payment Date</td><td>{{.PaymentDate.Format "2 January 2006"}}</td></tr>
    <tr><td style="padding: 6px 0; font-weight: bold;">Name</td><td>{{.PayerName}}</td></tr>
    {{if .MatricNumber}}<tr><td style="padding: 6px 0; font-weight: bold;">Matric No.</td><td>{{.MatricNumber}}</td></tr>{{end}}
    <tr><td style="padding: 6px 0; font-weight: bold;">Email</td><td>{{.Email}}</td></tr>
    <tr><td style="padding: 6px 0; font-weight: bold;">Event</td><td>{{.EventTitle}}</td></tr>
    <tr><td style="padding: 6px 0; font-weight: bold;">Event Date</td><td>{{.EventDate.Format "2 January 2006"}}</td></tr>
    {{if .PaymentMethod}}<tr><td style="padding: 6px 0; font-weight: bold;">Payment Method</td><td>{{.PaymentMethod}}</td></tr>{{end}}
    {{if .TransactionID}}<tr><td style="padding: 6px 0; font-weight: bold;">Transaction ID</td><td>{{.TransactionID}}</td></tr>{{end}}
  </table>
  {{if eq .Status "Verified"}}<p style="display: inline-block; background: #dcfce7; color: #166534; font-weight: bold; padding: 6px 16px; border: 1px solid #166534;">PAYMENT VERIFIED</p>{{end}}
  <div style="background: #1e293b; color: #ffffff; text-align: center; font-size: 20px; font-weight: bold; padding: 16px; margin-top: 12px;">
    Amount Paid: {{.Currency}} {{printf "%.2f" .Amount}}
  </div>
  <p style="color: #64748b; font-size: 12px; text-align: center; margin-top: 24px;">This receipt is computer generated and valid without a signature.</p>
</body>
</html>
`))

// BuildReceiptHTML renders the HTML variant with the same field set.
func BuildReceiptHTML(data ReceiptRenderData) ([]byte, error) {
	var buf bytes.Buffer
	if err := receiptHTMLTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render receipt html: %w", err)
	}
	return buf.Bytes(), nil
}
