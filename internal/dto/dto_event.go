package dto

import "time"

type EventCreateRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date" validate:"required"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	Type            string    `json:"type" validate:"required,oneof=event announcement activity"`
	IsPublic        bool      `json:"is_public"`
	RequiresPayment bool      `json:"requires_payment"`
	PaymentAmount   float64   `json:"payment_amount" validate:"gte=0"`
	Fee             float64   `json:"fee" validate:"gte=0"`
}

type EventUpdateRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	Location        *string    `json:"location,omitempty"`
	Category        *string    `json:"category,omitempty"`
	IsPublic        *bool      `json:"is_public,omitempty"`
	RequiresPayment *bool      `json:"requires_payment,omitempty"`
	PaymentAmount   *float64   `json:"payment_amount,omitempty"`
}
