package dto

import "github.com/google/uuid"

type AttendanceEntryRequest struct {
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
}

type RecordAttendanceRequest struct {
	LevelID *uuid.UUID               `json:"level_id,omitempty"`
	HeldOn  string                   `json:"held_on"`
	Entries []AttendanceEntryRequest `json:"entries"`
}
