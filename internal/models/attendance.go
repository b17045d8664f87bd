package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

type AttendanceSession struct {
	ID        uuid.UUID  `json:"id"`
	AcademyID uuid.UUID  `json:"academy_id"`
	LevelID   *uuid.UUID `json:"level_id,omitempty"`
	HeldOn    time.Time  `json:"held_on"`
	CreatedAt time.Time  `json:"created_at"`
}

type AttendanceRecord struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
}

// AttendanceSummary is a per-student aggregate over an academy's sessions.
// Late counts as attended.
type AttendanceSummary struct {
	StudentID uuid.UUID `json:"student_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Sessions  int       `json:"sessions"`
	Attended  int       `json:"attended"`
	Percent   float64   `json:"percent"`
}
