package services

import (
	"context"
	"fmt"
	"time"

	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
)

type VolunteerService struct {
	db *database.DB
}

func NewVolunteerService(db *database.DB) *VolunteerService {
	return &VolunteerService{db: db}
}

func (s *VolunteerService) Log(ctx context.Context, email, name, activity string, hours float64, servedOn time.Time) (*models.VolunteerHours, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("hours must be positive")
	}

	var entry models.VolunteerHours
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO volunteer_hours (email, name, activity, hours, served_on)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, name, activity, hours, served_on, created_at
	`, authz.NormalizeEmail(email), name, activity, hours, servedOn).Scan(
		&entry.ID, &entry.Email, &entry.Name, &entry.Activity,
		&entry.Hours, &entry.ServedOn, &entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to log volunteer hours: %w", err)
	}
	return &entry, nil
}

func (s *VolunteerService) ListByEmail(ctx context.Context, email string) ([]models.VolunteerHours, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, email, name, activity, hours, served_on, created_at
		FROM volunteer_hours
		WHERE LOWER(email) = $1
		ORDER BY served_on DESC
	`, authz.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.VolunteerHours
	for rows.Next() {
		var entry models.VolunteerHours
		if err := rows.Scan(
			&entry.ID, &entry.Email, &entry.Name, &entry.Activity,
			&entry.Hours, &entry.ServedOn, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *VolunteerService) TotalHours(ctx context.Context, email string) (float64, error) {
	var total float64
	err := s.db.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(hours), 0) FROM volunteer_hours WHERE LOWER(email) = $1
	`, authz.NormalizeEmail(email)).Scan(&total)
	return total, err
}
