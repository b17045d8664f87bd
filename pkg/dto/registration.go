package dto

import "github.com/google/uuid"

type CreateStudentRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
}

type UpdateStudentRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type CreateRegistrationRequest struct {
	StudentID uuid.UUID  `json:"student_id"`
	AcademyID uuid.UUID  `json:"academy_id"`
	LevelID   *uuid.UUID `json:"level_id,omitempty"`
	Season    string     `json:"season"`
}

type UpdateRegistrationStatusRequest struct {
	Status string `json:"status"`
}
