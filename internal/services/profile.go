package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
)

// ProfileService reads and mutates the profiles table. Profiles are created
// by out-of-band provisioning and are never deleted, only role-changed.
type ProfileService struct {
	db *database.DB
}

func NewProfileService(db *database.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, display_name, role, created_at, updated_at
		FROM profiles WHERE id = $1
	`, id).Scan(
		&profile.ID, &profile.Email, &profile.DisplayName, &profile.Role,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, display_name, role, created_at, updated_at
		FROM profiles WHERE LOWER(email) = $1
	`, authz.NormalizeEmail(email)).Scan(
		&profile.ID, &profile.Email, &profile.DisplayName, &profile.Role,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, email, display_name, role, created_at, updated_at
		FROM profiles
		ORDER BY display_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var profile models.Profile
		if err := rows.Scan(
			&profile.ID, &profile.Email, &profile.DisplayName, &profile.Role,
			&profile.CreatedAt, &profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (s *ProfileService) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE profiles SET role = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, email, display_name, role, created_at, updated_at
	`, role, id).Scan(
		&profile.ID, &profile.Email, &profile.DisplayName, &profile.Role,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Provision creates a profile for an email, or updates the role and display
// name if one already exists. This is the out-of-band provisioning step that
// precedes a first sign-in.
func (s *ProfileService) Provision(ctx context.Context, email, displayName, role string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO profiles (email, display_name, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET display_name = $2, role = $3, updated_at = NOW()
		RETURNING id, email, display_name, role, created_at, updated_at
	`, authz.NormalizeEmail(email), displayName, role).Scan(
		&profile.ID, &profile.Email, &profile.DisplayName, &profile.Role,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to provision profile: %w", err)
	}
	return &profile, nil
}
