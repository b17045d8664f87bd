package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceOpen   = "open"
	InvoicePaid   = "paid"
	InvoiceVoided = "voided"
)

type Invoice struct {
	ID             uuid.UUID `json:"id"`
	RegistrationID uuid.UUID `json:"registration_id"`
	Description    string    `json:"description"`
	AmountCents    int64     `json:"amount_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Derived from payments, not stored.
	PaidCents    int64 `json:"paid_cents"`
	BalanceCents int64 `json:"balance_cents"`
}

type Payment struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	PaidAt      time.Time `json:"paid_at"`
}

type SeasonTotals struct {
	Season        string `json:"season"`
	InvoicedCents int64  `json:"invoiced_cents"`
	PaidCents     int64  `json:"paid_cents"`
	BalanceCents  int64  `json:"balance_cents"`
}
