package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInvoiceService(t *testing.T) (*InvoiceService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewInvoiceService(db), mock
}

func TestInvoiceService_Create(t *testing.T) {
	svc, mock := setupInvoiceService(t)
	ctx := context.Background()
	invoiceID := uuid.New()
	registrationID := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "registration_id", "description", "amount_cents", "status", "created_at", "updated_at"}).
		AddRow(invoiceID, registrationID, "Spring tuition", int64(15000), models.InvoiceOpen, time.Now(), time.Now())

	mock.ExpectQuery(`INSERT INTO invoices`).
		WithArgs(registrationID, "Spring tuition", int64(15000)).
		WillReturnRows(rows)

	inv, err := svc.Create(ctx, registrationID, "Spring tuition", 15000)

	require.NoError(t, err)
	assert.Equal(t, invoiceID, inv.ID)
	assert.Equal(t, int64(15000), inv.AmountCents)
	// A fresh invoice owes its full amount
	assert.Equal(t, int64(15000), inv.BalanceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceService_Create_RejectsNonPositiveAmount(t *testing.T) {
	svc, mock := setupInvoiceService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), "bad", 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceService_GetByID_ComputesBalance(t *testing.T) {
	svc, mock := setupInvoiceService(t)
	ctx := context.Background()
	invoiceID := uuid.New()
	registrationID := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "registration_id", "description", "amount_cents", "status", "created_at", "updated_at", "coalesce"}).
		AddRow(invoiceID, registrationID, "Spring tuition", int64(15000), models.InvoiceOpen, time.Now(), time.Now(), int64(5000))

	mock.ExpectQuery(`LEFT JOIN payments`).
		WithArgs(invoiceID).
		WillReturnRows(rows)

	inv, err := svc.GetByID(ctx, invoiceID)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), inv.PaidCents)
	assert.Equal(t, int64(10000), inv.BalanceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceService_RecordPayment(t *testing.T) {
	svc, mock := setupInvoiceService(t)
	ctx := context.Background()
	invoiceID := uuid.New()
	paymentID := uuid.New()

	mock.ExpectBegin()

	paymentRows := pgxmock.NewRows([]string{"id", "invoice_id", "amount_cents", "method", "paid_at"}).
		AddRow(paymentID, invoiceID, int64(15000), "card", time.Now())
	mock.ExpectQuery(`INSERT INTO payments`).
		WithArgs(invoiceID, int64(15000), "card").
		WillReturnRows(paymentRows)

	mock.ExpectExec(`UPDATE invoices SET status`).
		WithArgs(models.InvoicePaid, invoiceID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	mock.ExpectCommit()
	mock.ExpectRollback()

	payment, err := svc.RecordPayment(ctx, invoiceID, 15000, "card")

	require.NoError(t, err)
	assert.Equal(t, paymentID, payment.ID)
	assert.Equal(t, int64(15000), payment.AmountCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceService_RecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	svc, mock := setupInvoiceService(t)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, uuid.New(), -500, "cash")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceService_SeasonTotals(t *testing.T) {
	svc, mock := setupInvoiceService(t)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"invoiced", "paid"}).
		AddRow(int64(120000), int64(45000))

	mock.ExpectQuery(`JOIN registrations r`).
		WithArgs("2026-spring").
		WillReturnRows(rows)

	totals, err := svc.SeasonTotals(ctx, "2026-spring")

	require.NoError(t, err)
	assert.Equal(t, "2026-spring", totals.Season)
	assert.Equal(t, int64(120000), totals.InvoicedCents)
	assert.Equal(t, int64(45000), totals.PaidCents)
	assert.Equal(t, int64(75000), totals.BalanceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}
