package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/iyforlando/academy-api/internal/services"
)

// ResolverInterface defines the methods used by handlers from authz.Resolver
type ResolverInterface interface {
	Resolve(ctx context.Context, session *authz.Session) (*authz.Access, error)
	Impersonate(ctx context.Context, caller *authz.Access, email string) error
	StopImpersonation(ctx context.Context, caller *authz.Access) error
}

// ProfileServiceInterface defines the methods used by handlers from ProfileService
type ProfileServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*models.Profile, error)
}

// AcademyServiceInterface defines the methods used by handlers from AcademyService
type AcademyServiceInterface interface {
	Create(ctx context.Context, name, season string, hasLevels bool, teacherEmail *string) (*models.Academy, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Academy, error)
	List(ctx context.Context, season string) ([]models.Academy, error)
	Update(ctx context.Context, id uuid.UUID, name string, hasLevels bool, teacherEmail *string) (*models.Academy, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddLevel(ctx context.Context, academyID uuid.UUID, name string, teacherEmail *string) (*models.Level, error)
	ListLevels(ctx context.Context, academyID uuid.UUID) ([]models.Level, error)
	UpdateLevel(ctx context.Context, levelID uuid.UUID, name string, teacherEmail *string) (*models.Level, error)
	DeleteLevel(ctx context.Context, levelID uuid.UUID) error
}

// StudentServiceInterface defines the methods used by handlers from StudentService
type StudentServiceInterface interface {
	Create(ctx context.Context, firstName, lastName string, email, phone *string, birthDate *time.Time) (*models.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Update(ctx context.Context, id uuid.UUID, firstName, lastName string, email, phone *string) (*models.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegistrationServiceInterface defines the methods used by handlers from RegistrationService
type RegistrationServiceInterface interface {
	Create(ctx context.Context, studentID, academyID uuid.UUID, levelID *uuid.UUID, season string) (*models.Registration, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Registration, error)
	ListByAcademy(ctx context.Context, academyID uuid.UUID, season string) ([]models.Registration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Registration, error)
	Cancel(ctx context.Context, id uuid.UUID) (*models.Registration, error)
}

// InvoiceServiceInterface defines the methods used by handlers from InvoiceService
type InvoiceServiceInterface interface {
	Create(ctx context.Context, registrationID uuid.UUID, description string, amountCents int64) (*models.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]models.Invoice, error)
	RecordPayment(ctx context.Context, invoiceID uuid.UUID, amountCents int64, method string) (*models.Payment, error)
	SeasonTotals(ctx context.Context, season string) (*models.SeasonTotals, error)
}

// AttendanceServiceInterface defines the methods used by handlers from AttendanceService
type AttendanceServiceInterface interface {
	RecordSession(ctx context.Context, academyID uuid.UUID, levelID *uuid.UUID, heldOn time.Time, entries []services.AttendanceEntry) (*models.AttendanceSession, error)
	ListSessions(ctx context.Context, academyID uuid.UUID) ([]models.AttendanceSession, error)
	SummaryByAcademy(ctx context.Context, academyID uuid.UUID) ([]models.AttendanceSummary, error)
}

// VolunteerServiceInterface defines the methods used by handlers from VolunteerService
type VolunteerServiceInterface interface {
	Log(ctx context.Context, email, name, activity string, hours float64, servedOn time.Time) (*models.VolunteerHours, error)
	ListByEmail(ctx context.Context, email string) ([]models.VolunteerHours, error)
	TotalHours(ctx context.Context, email string) (float64, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, profileID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllProfileTokens(ctx context.Context, profileID uuid.UUID) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(profileID uuid.UUID, email string) (*services.TokenPair, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}

// EmailServiceInterface defines the methods used by handlers from EmailService
type EmailServiceInterface interface {
	SendRegistrationConfirmation(to, studentName, academyName, season string) error
	SendPaymentReceipt(to, academyName string, amountCents, balanceCents int64) error
}

// HubInterface defines the methods used by handlers from the SSE hub
type HubInterface interface {
	BroadcastRegistration(academyID, registrationID uuid.UUID, status string)
	BroadcastAttendance(academyID, sessionID uuid.UUID)
}
