package services

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEventCancelled       = errors.New("event has been cancelled")
	ErrAlreadyRegistered    = errors.New("user already registered for this event")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNoReceipt            = errors.New("registration has no payment receipt")
	ErrReceiptNotFound      = errors.New("payment receipt not found")
	ErrInvalidShareToken    = errors.New("invalid share token")
)

// NotVerifiedError rejects an official document request for a receipt that
// has not been verified yet; the message names the current status.
type NotVerifiedError struct {
	Status string
}

func (e *NotVerifiedError) Error() string {
	return fmt.Sprintf("receipt cannot be downloaded: payment status is %s, only Verified receipts can be issued", e.Status)
}

// StatusConflictError rejects a verification transition that would repeat
// the receipt's current status.
type StatusConflictError struct {
	Status string
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("payment receipt is already %s", e.Status)
}
