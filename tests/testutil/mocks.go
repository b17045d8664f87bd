package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/iyforlando/academy-api/internal/oauth"
	"github.com/iyforlando/academy-api/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockProfileService mocks the ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) List(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*models.Profile, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

// MockScopeService mocks the ScopeService
type MockScopeService struct {
	mock.Mock
}

func (m *MockScopeService) AssignmentsFor(ctx context.Context, email string) ([]authz.Assignment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]authz.Assignment), args.Error(1)
}

// MockAcademyService mocks the AcademyService
type MockAcademyService struct {
	mock.Mock
}

func (m *MockAcademyService) Create(ctx context.Context, name, season string, hasLevels bool, teacherEmail *string) (*models.Academy, error) {
	args := m.Called(ctx, name, season, hasLevels, teacherEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Academy), args.Error(1)
}

func (m *MockAcademyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Academy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Academy), args.Error(1)
}

func (m *MockAcademyService) List(ctx context.Context, season string) ([]models.Academy, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Academy), args.Error(1)
}

func (m *MockAcademyService) Update(ctx context.Context, id uuid.UUID, name string, hasLevels bool, teacherEmail *string) (*models.Academy, error) {
	args := m.Called(ctx, id, name, hasLevels, teacherEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Academy), args.Error(1)
}

func (m *MockAcademyService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAcademyService) AddLevel(ctx context.Context, academyID uuid.UUID, name string, teacherEmail *string) (*models.Level, error) {
	args := m.Called(ctx, academyID, name, teacherEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Level), args.Error(1)
}

func (m *MockAcademyService) ListLevels(ctx context.Context, academyID uuid.UUID) ([]models.Level, error) {
	args := m.Called(ctx, academyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Level), args.Error(1)
}

func (m *MockAcademyService) UpdateLevel(ctx context.Context, levelID uuid.UUID, name string, teacherEmail *string) (*models.Level, error) {
	args := m.Called(ctx, levelID, name, teacherEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Level), args.Error(1)
}

func (m *MockAcademyService) DeleteLevel(ctx context.Context, levelID uuid.UUID) error {
	args := m.Called(ctx, levelID)
	return args.Error(0)
}

// MockStudentService mocks the StudentService
type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) Create(ctx context.Context, firstName, lastName string, email, phone *string, birthDate *time.Time) (*models.Student, error) {
	args := m.Called(ctx, firstName, lastName, email, phone, birthDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) List(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStudentService) Update(ctx context.Context, id uuid.UUID, firstName, lastName string, email, phone *string) (*models.Student, error) {
	args := m.Called(ctx, id, firstName, lastName, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRegistrationService mocks the RegistrationService
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Create(ctx context.Context, studentID, academyID uuid.UUID, levelID *uuid.UUID, season string) (*models.Registration, error) {
	args := m.Called(ctx, studentID, academyID, levelID, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Registration), args.Error(1)
}

func (m *MockRegistrationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Registration), args.Error(1)
}

func (m *MockRegistrationService) ListByAcademy(ctx context.Context, academyID uuid.UUID, season string) ([]models.Registration, error) {
	args := m.Called(ctx, academyID, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Registration), args.Error(1)
}

func (m *MockRegistrationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Registration, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Registration), args.Error(1)
}

func (m *MockRegistrationService) Cancel(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Registration), args.Error(1)
}

// MockInvoiceService mocks the InvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, registrationID uuid.UUID, description string, amountCents int64) (*models.Invoice, error) {
	args := m.Called(ctx, registrationID, description, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]models.Invoice, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) RecordPayment(ctx context.Context, invoiceID uuid.UUID, amountCents int64, method string) (*models.Payment, error) {
	args := m.Called(ctx, invoiceID, amountCents, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockInvoiceService) SeasonTotals(ctx context.Context, season string) (*models.SeasonTotals, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeasonTotals), args.Error(1)
}

// MockAttendanceService mocks the AttendanceService
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) RecordSession(ctx context.Context, academyID uuid.UUID, levelID *uuid.UUID, heldOn time.Time, entries []services.AttendanceEntry) (*models.AttendanceSession, error) {
	args := m.Called(ctx, academyID, levelID, heldOn, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceService) ListSessions(ctx context.Context, academyID uuid.UUID) ([]models.AttendanceSession, error) {
	args := m.Called(ctx, academyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceService) SummaryByAcademy(ctx context.Context, academyID uuid.UUID) ([]models.AttendanceSummary, error) {
	args := m.Called(ctx, academyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceSummary), args.Error(1)
}

// MockVolunteerService mocks the VolunteerService
type MockVolunteerService struct {
	mock.Mock
}

func (m *MockVolunteerService) Log(ctx context.Context, email, name, activity string, hours float64, servedOn time.Time) (*models.VolunteerHours, error) {
	args := m.Called(ctx, email, name, activity, hours, servedOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VolunteerHours), args.Error(1)
}

func (m *MockVolunteerService) ListByEmail(ctx context.Context, email string) ([]models.VolunteerHours, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VolunteerHours), args.Error(1)
}

func (m *MockVolunteerService) TotalHours(ctx context.Context, email string) (float64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(float64), args.Error(1)
}

// MockTokenService mocks the TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) StoreRefreshToken(ctx context.Context, profileID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, profileID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockTokenService) RevokeAllProfileTokens(ctx context.Context, profileID uuid.UUID) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockTokenService) CleanupExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEmailService mocks the EmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRegistrationConfirmation(to, studentName, academyName, season string) error {
	args := m.Called(to, studentName, academyName, season)
	return args.Error(0)
}

func (m *MockEmailService) SendPaymentReceipt(to, academyName string, amountCents, balanceCents int64) error {
	args := m.Called(to, academyName, amountCents, balanceCents)
	return args.Error(0)
}

// MockHub mocks the SSE hub broadcast surface
type MockHub struct {
	mock.Mock
}

func (m *MockHub) BroadcastRegistration(academyID, registrationID uuid.UUID, status string) {
	m.Called(academyID, registrationID, status)
}

func (m *MockHub) BroadcastAttendance(academyID, sessionID uuid.UUID) {
	m.Called(academyID, sessionID)
}

// MockResolver mocks the authz resolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, session *authz.Session) (*authz.Access, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authz.Access), args.Error(1)
}

func (m *MockResolver) Impersonate(ctx context.Context, caller *authz.Access, email string) error {
	args := m.Called(ctx, caller, email)
	return args.Error(0)
}

func (m *MockResolver) StopImpersonation(ctx context.Context, caller *authz.Access) error {
	args := m.Called(ctx, caller)
	return args.Error(0)
}

// MockImpersonationStore mocks the durable impersonation store
type MockImpersonationStore struct {
	mock.Mock
}

func (m *MockImpersonationStore) Get(ctx context.Context, adminID uuid.UUID) (string, error) {
	args := m.Called(ctx, adminID)
	return args.String(0), args.Error(1)
}

func (m *MockImpersonationStore) Set(ctx context.Context, adminID uuid.UUID, email string) error {
	args := m.Called(ctx, adminID, email)
	return args.Error(0)
}

func (m *MockImpersonationStore) Clear(ctx context.Context, adminID uuid.UUID) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

// MockOAuthProvider mocks an OAuth provider
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) GetConsentURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockOAuthProvider) ExchangeCode(ctx context.Context, code string) (*oauth.UserInfo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.UserInfo), args.Error(1)
}
