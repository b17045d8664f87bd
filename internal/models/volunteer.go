package models

import (
	"time"

	"github.com/google/uuid"
)

type VolunteerHours struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Activity  string    `json:"activity"`
	Hours     float64   `json:"hours"`
	ServedOn  time.Time `json:"served_on"`
	CreatedAt time.Time `json:"created_at"`
}
