package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
)

type AttendanceService struct {
	db *database.DB
}

func NewAttendanceService(db *database.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

type AttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
}

// RecordSession stores one attendance sheet (the session plus every
// student's status) in a single transaction.
func (s *AttendanceService) RecordSession(ctx context.Context, academyID uuid.UUID, levelID *uuid.UUID, heldOn time.Time, entries []AttendanceEntry) (*models.AttendanceSession, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("attendance sheet is empty")
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var session models.AttendanceSession
	err = tx.QueryRow(ctx, `
		INSERT INTO attendance_sessions (academy_id, level_id, held_on)
		VALUES ($1, $2, $3)
		RETURNING id, academy_id, level_id, held_on, created_at
	`, academyID, levelID, heldOn).Scan(
		&session.ID, &session.AcademyID, &session.LevelID, &session.HeldOn, &session.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	for _, entry := range entries {
		_, err = tx.Exec(ctx, `
			INSERT INTO attendance_records (session_id, student_id, status)
			VALUES ($1, $2, $3)
		`, session.ID, entry.StudentID, entry.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to record attendance for student %s: %w", entry.StudentID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &session, nil
}

func (s *AttendanceService) ListSessions(ctx context.Context, academyID uuid.UUID) ([]models.AttendanceSession, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, academy_id, level_id, held_on, created_at
		FROM attendance_sessions
		WHERE academy_id = $1
		ORDER BY held_on DESC
	`, academyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.AttendanceSession
	for rows.Next() {
		var session models.AttendanceSession
		if err := rows.Scan(&session.ID, &session.AcademyID, &session.LevelID, &session.HeldOn, &session.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// SummaryByAcademy aggregates attendance per student over all of an
// academy's sessions. Present and late both count as attended.
func (s *AttendanceService) SummaryByAcademy(ctx context.Context, academyID uuid.UUID) ([]models.AttendanceSummary, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT st.id, st.first_name, st.last_name,
		       COUNT(ar.id),
		       COUNT(ar.id) FILTER (WHERE ar.status IN ('present', 'late'))
		FROM attendance_records ar
		JOIN attendance_sessions a ON ar.session_id = a.id
		JOIN students st ON ar.student_id = st.id
		WHERE a.academy_id = $1
		GROUP BY st.id, st.first_name, st.last_name
		ORDER BY st.last_name, st.first_name
	`, academyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.AttendanceSummary
	for rows.Next() {
		var summary models.AttendanceSummary
		if err := rows.Scan(&summary.StudentID, &summary.FirstName, &summary.LastName, &summary.Sessions, &summary.Attended); err != nil {
			return nil, err
		}
		if summary.Sessions > 0 {
			summary.Percent = float64(summary.Attended) / float64(summary.Sessions) * 100
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}
