package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RegistrationPending    = "pending"
	RegistrationConfirmed  = "confirmed"
	RegistrationWaitlisted = "waitlisted"
	RegistrationCancelled  = "cancelled"
)

type Registration struct {
	ID        uuid.UUID  `json:"id"`
	StudentID uuid.UUID  `json:"student_id"`
	AcademyID uuid.UUID  `json:"academy_id"`
	LevelID   *uuid.UUID `json:"level_id,omitempty"`
	Season    string     `json:"season"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Student *Student `json:"student,omitempty"`
}
