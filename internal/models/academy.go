package models

import (
	"time"

	"github.com/google/uuid"
)

type Academy struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Season       string    `json:"season"`
	HasLevels    bool      `json:"has_levels"`
	TeacherEmail *string   `json:"teacher_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Level struct {
	ID           uuid.UUID `json:"id"`
	AcademyID    uuid.UUID `json:"academy_id"`
	Name         string    `json:"name"`
	TeacherEmail *string   `json:"teacher_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
