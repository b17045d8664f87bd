package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
)

type InvoiceService struct {
	db *database.DB
}

func NewInvoiceService(db *database.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

func (s *InvoiceService) Create(ctx context.Context, registrationID uuid.UUID, description string, amountCents int64) (*models.Invoice, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("invoice amount must be positive")
	}

	var inv models.Invoice
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO invoices (registration_id, description, amount_cents)
		VALUES ($1, $2, $3)
		RETURNING id, registration_id, description, amount_cents, status, created_at, updated_at
	`, registrationID, description, amountCents).Scan(
		&inv.ID, &inv.RegistrationID, &inv.Description, &inv.AmountCents,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	inv.BalanceCents = inv.AmountCents
	return &inv, nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.Pool.QueryRow(ctx, `
		SELECT i.id, i.registration_id, i.description, i.amount_cents, i.status, i.created_at, i.updated_at,
		       COALESCE(SUM(p.amount_cents), 0)
		FROM invoices i
		LEFT JOIN payments p ON p.invoice_id = i.id
		WHERE i.id = $1
		GROUP BY i.id
	`, id).Scan(
		&inv.ID, &inv.RegistrationID, &inv.Description, &inv.AmountCents,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt, &inv.PaidCents,
	)
	if err != nil {
		return nil, err
	}
	inv.BalanceCents = inv.AmountCents - inv.PaidCents
	return &inv, nil
}

func (s *InvoiceService) ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]models.Invoice, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT i.id, i.registration_id, i.description, i.amount_cents, i.status, i.created_at, i.updated_at,
		       COALESCE(SUM(p.amount_cents), 0)
		FROM invoices i
		LEFT JOIN payments p ON p.invoice_id = i.id
		WHERE i.registration_id = $1
		GROUP BY i.id
		ORDER BY i.created_at
	`, registrationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.RegistrationID, &inv.Description, &inv.AmountCents,
			&inv.Status, &inv.CreatedAt, &inv.UpdatedAt, &inv.PaidCents,
		); err != nil {
			return nil, err
		}
		inv.BalanceCents = inv.AmountCents - inv.PaidCents
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// RecordPayment inserts a payment and, when the invoice is fully covered,
// marks it paid, all in one transaction.
func (s *InvoiceService) RecordPayment(ctx context.Context, invoiceID uuid.UUID, amountCents int64, method string) (*models.Payment, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var payment models.Payment
	err = tx.QueryRow(ctx, `
		INSERT INTO payments (invoice_id, amount_cents, method)
		VALUES ($1, $2, $3)
		RETURNING id, invoice_id, amount_cents, method, paid_at
	`, invoiceID, amountCents, method).Scan(
		&payment.ID, &payment.InvoiceID, &payment.AmountCents, &payment.Method, &payment.PaidAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE invoices SET status = $1, updated_at = NOW()
		WHERE id = $2
		AND amount_cents <= (SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE invoice_id = $2)
	`, models.InvoicePaid, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &payment, nil
}

func (s *InvoiceService) SeasonTotals(ctx context.Context, season string) (*models.SeasonTotals, error) {
	totals := models.SeasonTotals{Season: season}
	err := s.db.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(i.amount_cents), 0),
		       COALESCE(SUM(p.paid), 0)
		FROM invoices i
		JOIN registrations r ON i.registration_id = r.id
		LEFT JOIN (
			SELECT invoice_id, SUM(amount_cents) AS paid FROM payments GROUP BY invoice_id
		) p ON p.invoice_id = i.id
		WHERE r.season = $1 AND i.status != 'voided'
	`, season).Scan(&totals.InvoicedCents, &totals.PaidCents)
	if err != nil {
		return nil, err
	}
	totals.BalanceCents = totals.InvoicedCents - totals.PaidCents
	return &totals, nil
}
