package handlers

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type InvoiceHandler struct {
	invoiceService      InvoiceServiceInterface
	registrationService RegistrationServiceInterface
	studentService      StudentServiceInterface
	academyService      AcademyServiceInterface
	emailService        EmailServiceInterface
}

func NewInvoiceHandler(
	invoiceService InvoiceServiceInterface,
	registrationService RegistrationServiceInterface,
	studentService StudentServiceInterface,
	academyService AcademyServiceInterface,
	emailService EmailServiceInterface,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:      invoiceService,
		registrationService: registrationService,
		studentService:      studentService,
		academyService:      academyService,
		emailService:        emailService,
	}
}

func (h *InvoiceHandler) Create(c *drift.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.RegistrationID == uuid.Nil {
		c.BadRequest("registration_id is required")
		return
	}

	invoice, err := h.invoiceService.Create(context.Background(), req.RegistrationID, req.Description, req.AmountCents)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	_ = c.JSON(201, invoice)
}

func (h *InvoiceHandler) Get(c *drift.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid invoice id")
		return
	}

	invoice, err := h.invoiceService.GetByID(context.Background(), invoiceID)
	if err != nil {
		c.NotFound("invoice not found")
		return
	}

	_ = c.JSON(200, invoice)
}

func (h *InvoiceHandler) ListByRegistration(c *drift.Context) {
	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid registration id")
		return
	}

	invoices, err := h.invoiceService.ListByRegistration(context.Background(), registrationID)
	if err != nil {
		c.InternalServerError("failed to list invoices")
		return
	}

	_ = c.JSON(200, invoices)
}

func (h *InvoiceHandler) RecordPayment(c *drift.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid invoice id")
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	ctx := context.Background()

	payment, err := h.invoiceService.RecordPayment(ctx, invoiceID, req.AmountCents, req.Method)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	h.sendReceipt(ctx, invoiceID)

	_ = c.JSON(201, payment)
}

func (h *InvoiceHandler) SeasonTotals(c *drift.Context) {
	season := c.QueryParam("season")
	if season == "" {
		c.BadRequest("season is required")
		return
	}

	totals, err := h.invoiceService.SeasonTotals(context.Background(), season)
	if err != nil {
		c.InternalServerError("failed to compute season totals")
		return
	}

	_ = c.JSON(200, totals)
}

// sendReceipt emails the paying student when they have an address on file.
// Failures are logged, never surfaced to the payer.
func (h *InvoiceHandler) sendReceipt(ctx context.Context, invoiceID uuid.UUID) {
	invoice, err := h.invoiceService.GetByID(ctx, invoiceID)
	if err != nil {
		return
	}

	registration, err := h.registrationService.GetByID(ctx, invoice.RegistrationID)
	if err != nil {
		return
	}

	student, err := h.studentService.GetByID(ctx, registration.StudentID)
	if err != nil || student.Email == nil {
		return
	}

	academy, err := h.academyService.GetByID(ctx, registration.AcademyID)
	if err != nil {
		return
	}

	if err := h.emailService.SendPaymentReceipt(*student.Email, academy.Name, invoice.PaidCents, invoice.BalanceCents); err != nil {
		log.Printf("payment receipt email failed for %s: %v", *student.Email, err)
	}
}
