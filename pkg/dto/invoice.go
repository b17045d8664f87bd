package dto

import "github.com/google/uuid"

type CreateInvoiceRequest struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	Description    string    `json:"description"`
	AmountCents    int64     `json:"amount_cents"`
}

type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
}
