package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
)

type AcademyService struct {
	db *database.DB
}

func NewAcademyService(db *database.DB) *AcademyService {
	return &AcademyService{db: db}
}

func (s *AcademyService) Create(ctx context.Context, name, season string, hasLevels bool, teacherEmail *string) (*models.Academy, error) {
	var academy models.Academy
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO academies (name, season, has_levels, teacher_email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, season, has_levels, teacher_email, created_at, updated_at
	`, name, season, hasLevels, teacherEmail).Scan(
		&academy.ID, &academy.Name, &academy.Season, &academy.HasLevels,
		&academy.TeacherEmail, &academy.CreatedAt, &academy.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create academy: %w", err)
	}
	return &academy, nil
}

func (s *AcademyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Academy, error) {
	var academy models.Academy
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, season, has_levels, teacher_email, created_at, updated_at
		FROM academies WHERE id = $1
	`, id).Scan(
		&academy.ID, &academy.Name, &academy.Season, &academy.HasLevels,
		&academy.TeacherEmail, &academy.CreatedAt, &academy.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &academy, nil
}

// List returns academies, optionally filtered by season.
func (s *AcademyService) List(ctx context.Context, season string) ([]models.Academy, error) {
	query := `
		SELECT id, name, season, has_levels, teacher_email, created_at, updated_at
		FROM academies
		ORDER BY name`
	args := []any{}
	if season != "" {
		query = `
		SELECT id, name, season, has_levels, teacher_email, created_at, updated_at
		FROM academies
		WHERE season = $1
		ORDER BY name`
		args = append(args, season)
	}

	rows, err := s.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var academies []models.Academy
	for rows.Next() {
		var academy models.Academy
		if err := rows.Scan(
			&academy.ID, &academy.Name, &academy.Season, &academy.HasLevels,
			&academy.TeacherEmail, &academy.CreatedAt, &academy.UpdatedAt,
		); err != nil {
			return nil, err
		}
		academies = append(academies, academy)
	}
	return academies, rows.Err()
}

func (s *AcademyService) Update(ctx context.Context, id uuid.UUID, name string, hasLevels bool, teacherEmail *string) (*models.Academy, error) {
	var academy models.Academy
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE academies SET name = $1, has_levels = $2, teacher_email = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, season, has_levels, teacher_email, created_at, updated_at
	`, name, hasLevels, teacherEmail, id).Scan(
		&academy.ID, &academy.Name, &academy.Season, &academy.HasLevels,
		&academy.TeacherEmail, &academy.CreatedAt, &academy.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &academy, nil
}

func (s *AcademyService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM academies WHERE id = $1`, id)
	return err
}

func (s *AcademyService) AddLevel(ctx context.Context, academyID uuid.UUID, name string, teacherEmail *string) (*models.Level, error) {
	academy, err := s.GetByID(ctx, academyID)
	if err != nil {
		return nil, err
	}
	if !academy.HasLevels {
		return nil, fmt.Errorf("academy %s does not have levels", academy.Name)
	}

	var level models.Level
	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO levels (academy_id, name, teacher_email)
		VALUES ($1, $2, $3)
		RETURNING id, academy_id, name, teacher_email, created_at
	`, academyID, name, teacherEmail).Scan(
		&level.ID, &level.AcademyID, &level.Name, &level.TeacherEmail, &level.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create level: %w", err)
	}
	return &level, nil
}

func (s *AcademyService) ListLevels(ctx context.Context, academyID uuid.UUID) ([]models.Level, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, academy_id, name, teacher_email, created_at
		FROM levels WHERE academy_id = $1
		ORDER BY name
	`, academyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []models.Level
	for rows.Next() {
		var level models.Level
		if err := rows.Scan(&level.ID, &level.AcademyID, &level.Name, &level.TeacherEmail, &level.CreatedAt); err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

func (s *AcademyService) UpdateLevel(ctx context.Context, levelID uuid.UUID, name string, teacherEmail *string) (*models.Level, error) {
	var level models.Level
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE levels SET name = $1, teacher_email = $2
		WHERE id = $3
		RETURNING id, academy_id, name, teacher_email, created_at
	`, name, teacherEmail, levelID).Scan(
		&level.ID, &level.AcademyID, &level.Name, &level.TeacherEmail, &level.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (s *AcademyService) DeleteLevel(ctx context.Context, levelID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM levels WHERE id = $1`, levelID)
	return err
}
