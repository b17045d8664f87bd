package services

import (
	"context"

	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/database"
)

// ScopeService assembles teaching assignments from the academies and levels
// tables. The result is always recomputed from those rows, never cached or
// persisted.
type ScopeService struct {
	db *database.DB
}

func NewScopeService(db *database.DB) *ScopeService {
	return &ScopeService{db: db}
}

// AssignmentsFor returns every academy and level whose teacher_email matches
// the given email, case-insensitively. An empty email returns immediately
// without touching the database. On query failure nothing partial is
// returned.
func (s *ScopeService) AssignmentsFor(ctx context.Context, email string) ([]authz.Assignment, error) {
	email = authz.NormalizeEmail(email)
	if email == "" {
		return nil, nil
	}

	var assignments []authz.Assignment

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, name FROM academies
		WHERE LOWER(teacher_email) = $1
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a authz.Assignment
		if err := rows.Scan(&a.AcademyID, &a.AcademyName); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	levelRows, err := s.db.Pool.Query(ctx, `
		SELECT l.academy_id, a.name, l.name
		FROM levels l
		JOIN academies a ON l.academy_id = a.id
		WHERE LOWER(l.teacher_email) = $1
	`, email)
	if err != nil {
		return nil, err
	}
	defer levelRows.Close()

	for levelRows.Next() {
		var a authz.Assignment
		var level string
		if err := levelRows.Scan(&a.AcademyID, &a.AcademyName, &level); err != nil {
			return nil, err
		}
		a.Level = &level
		assignments = append(assignments, a)
	}
	if err := levelRows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
