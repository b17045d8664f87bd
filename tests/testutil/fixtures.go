package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/iyforlando/academy-api/internal/oauth"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateProfile creates a test profile with default values
func (f *Fixtures) CreateProfile(t *testing.T, opts ...ProfileOption) *models.Profile {
	t.Helper()
	f.counter++

	profile := &models.Profile{
		Email:       fmt.Sprintf("profile%d@example.com", f.counter),
		DisplayName: fmt.Sprintf("Test Profile %d", f.counter),
		Role:        models.StoredRoleViewer,
	}

	for _, opt := range opts {
		opt(profile)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO profiles (email, display_name, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, display_name, role, created_at, updated_at
	`, profile.Email, profile.DisplayName, profile.Role).Scan(
		&profile.ID, &profile.Email, &profile.DisplayName, &profile.Role,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return profile
}

// ProfileOption configures a test profile
type ProfileOption func(*models.Profile)

// WithEmail sets the profile's email
func WithEmail(email string) ProfileOption {
	return func(p *models.Profile) {
		p.Email = email
	}
}

// WithRole sets the profile's stored role
func WithRole(role string) ProfileOption {
	return func(p *models.Profile) {
		p.Role = role
	}
}

// WithDisplayName sets the profile's display name
func WithDisplayName(name string) ProfileOption {
	return func(p *models.Profile) {
		p.DisplayName = name
	}
}

// CreateAcademy creates a test academy
func (f *Fixtures) CreateAcademy(t *testing.T, opts ...AcademyOption) *models.Academy {
	t.Helper()
	f.counter++

	academy := &models.Academy{
		Name:   fmt.Sprintf("Test Academy %d", f.counter),
		Season: "2026-spring",
	}

	for _, opt := range opts {
		opt(academy)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO academies (name, season, has_levels, teacher_email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, season, has_levels, teacher_email, created_at, updated_at
	`, academy.Name, academy.Season, academy.HasLevels, academy.TeacherEmail).Scan(
		&academy.ID, &academy.Name, &academy.Season, &academy.HasLevels,
		&academy.TeacherEmail, &academy.CreatedAt, &academy.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create academy: %v", err)
	}

	return academy
}

// AcademyOption configures a test academy
type AcademyOption func(*models.Academy)

// WithAcademyName sets the academy's name
func WithAcademyName(name string) AcademyOption {
	return func(a *models.Academy) {
		a.Name = name
	}
}

// WithSeason sets the academy's season
func WithSeason(season string) AcademyOption {
	return func(a *models.Academy) {
		a.Season = season
	}
}

// WithTeacher assigns a whole-academy teacher
func WithTeacher(email string) AcademyOption {
	return func(a *models.Academy) {
		a.TeacherEmail = &email
	}
}

// WithLevels marks the academy as level-structured
func WithLevels() AcademyOption {
	return func(a *models.Academy) {
		a.HasLevels = true
	}
}

// CreateLevel creates a test level inside an academy
func (f *Fixtures) CreateLevel(t *testing.T, academy *models.Academy, name string, teacherEmail *string) *models.Level {
	t.Helper()

	level := &models.Level{AcademyID: academy.ID, Name: name, TeacherEmail: teacherEmail}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO levels (academy_id, name, teacher_email)
		VALUES ($1, $2, $3)
		RETURNING id, academy_id, name, teacher_email, created_at
	`, level.AcademyID, level.Name, level.TeacherEmail).Scan(
		&level.ID, &level.AcademyID, &level.Name, &level.TeacherEmail, &level.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create level: %v", err)
	}

	return level
}

// CreateStudent creates a test student
func (f *Fixtures) CreateStudent(t *testing.T) *models.Student {
	t.Helper()
	f.counter++

	email := fmt.Sprintf("student%d@example.com", f.counter)
	student := &models.Student{
		FirstName: "Test",
		LastName:  fmt.Sprintf("Student%d", f.counter),
		Email:     &email,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO students (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id, first_name, last_name, email, phone, birth_date, created_at, updated_at
	`, student.FirstName, student.LastName, student.Email).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Email,
		&student.Phone, &student.BirthDate, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create student: %v", err)
	}

	return student
}

// CreateRegistration registers a student into an academy
func (f *Fixtures) CreateRegistration(t *testing.T, student *models.Student, academy *models.Academy) *models.Registration {
	t.Helper()

	registration := &models.Registration{
		StudentID: student.ID,
		AcademyID: academy.ID,
		Season:    academy.Season,
		Status:    models.RegistrationPending,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO registrations (student_id, academy_id, season, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, student_id, academy_id, level_id, season, status, created_at, updated_at
	`, registration.StudentID, registration.AcademyID, registration.Season, registration.Status).Scan(
		&registration.ID, &registration.StudentID, &registration.AcademyID, &registration.LevelID,
		&registration.Season, &registration.Status, &registration.CreatedAt, &registration.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create registration: %v", err)
	}

	return registration
}

// CreateRefreshToken creates a test refresh token
func (f *Fixtures) CreateRefreshToken(t *testing.T, profileID uuid.UUID, tokenHash string, expiresAt time.Time) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO refresh_tokens (profile_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`, profileID, tokenHash, expiresAt)
	if err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}
}

// OAuthUserInfo creates test OAuth user info
func OAuthUserInfo(email, name string) *oauth.UserInfo {
	return &oauth.UserInfo{
		Email: email,
		Name:  name,
	}
}
