package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/jackc/pgx/v5"
)

// ImpersonationService is the durable authz.ImpersonationStore. One row per
// admin, keyed by profile id, so the "viewing as" state survives restarts.
type ImpersonationService struct {
	db *database.DB
}

func NewImpersonationService(db *database.DB) *ImpersonationService {
	return &ImpersonationService{db: db}
}

func (s *ImpersonationService) Get(ctx context.Context, adminID uuid.UUID) (string, error) {
	var email string
	err := s.db.Pool.QueryRow(ctx, `
		SELECT impersonated_email FROM impersonation_state WHERE admin_id = $1
	`, adminID).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

func (s *ImpersonationService) Set(ctx context.Context, adminID uuid.UUID, email string) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO impersonation_state (admin_id, impersonated_email)
		VALUES ($1, $2)
		ON CONFLICT (admin_id) DO UPDATE SET impersonated_email = $2, updated_at = NOW()
	`, adminID, email)
	return err
}

func (s *ImpersonationService) Clear(ctx context.Context, adminID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM impersonation_state WHERE admin_id = $1`, adminID)
	return err
}
