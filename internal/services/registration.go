package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
)

type RegistrationService struct {
	db *database.DB
}

func NewRegistrationService(db *database.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

func (s *RegistrationService) Create(ctx context.Context, studentID, academyID uuid.UUID, levelID *uuid.UUID, season string) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO registrations (student_id, academy_id, level_id, season)
		VALUES ($1, $2, $3, $4)
		RETURNING id, student_id, academy_id, level_id, season, status, created_at, updated_at
	`, studentID, academyID, levelID, season).Scan(
		&reg.ID, &reg.StudentID, &reg.AcademyID, &reg.LevelID,
		&reg.Season, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	return &reg, nil
}

func (s *RegistrationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, student_id, academy_id, level_id, season, status, created_at, updated_at
		FROM registrations WHERE id = $1
	`, id).Scan(
		&reg.ID, &reg.StudentID, &reg.AcademyID, &reg.LevelID,
		&reg.Season, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListByAcademy returns an academy's registrations with the student rows
// joined in, optionally filtered by season.
func (s *RegistrationService) ListByAcademy(ctx context.Context, academyID uuid.UUID, season string) ([]models.Registration, error) {
	query := `
		SELECT r.id, r.student_id, r.academy_id, r.level_id, r.season, r.status, r.created_at, r.updated_at,
		       s.id, s.first_name, s.last_name, s.email, s.phone, s.birth_date, s.created_at, s.updated_at
		FROM registrations r
		JOIN students s ON r.student_id = s.id
		WHERE r.academy_id = $1
		ORDER BY s.last_name, s.first_name`
	args := []any{academyID}
	if season != "" {
		query = `
		SELECT r.id, r.student_id, r.academy_id, r.level_id, r.season, r.status, r.created_at, r.updated_at,
		       s.id, s.first_name, s.last_name, s.email, s.phone, s.birth_date, s.created_at, s.updated_at
		FROM registrations r
		JOIN students s ON r.student_id = s.id
		WHERE r.academy_id = $1 AND r.season = $2
		ORDER BY s.last_name, s.first_name`
		args = append(args, season)
	}

	rows, err := s.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		var reg models.Registration
		var student models.Student
		if err := rows.Scan(
			&reg.ID, &reg.StudentID, &reg.AcademyID, &reg.LevelID,
			&reg.Season, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
			&student.ID, &student.FirstName, &student.LastName,
			&student.Email, &student.Phone, &student.BirthDate,
			&student.CreatedAt, &student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reg.Student = &student
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (s *RegistrationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE registrations SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, student_id, academy_id, level_id, season, status, created_at, updated_at
	`, status, id).Scan(
		&reg.ID, &reg.StudentID, &reg.AcademyID, &reg.LevelID,
		&reg.Season, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *RegistrationService) Cancel(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	return s.UpdateStatus(ctx, id, models.RegistrationCancelled)
}
