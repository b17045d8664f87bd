package dto

import "github.com/google/uuid"

// SessionResponse is the authorization context the frontend consumes for
// route guards and role-based rendering.
type SessionResponse struct {
	Role              string                  `json:"role"`
	IsAdmin           bool                    `json:"is_admin"`
	IsTeacher         bool                    `json:"is_teacher"`
	TeacherProfile    *TeacherProfileResponse `json:"teacher_profile,omitempty"`
	ImpersonatedEmail string                  `json:"impersonated_email,omitempty"`
}

type TeacherProfileResponse struct {
	Email       string              `json:"email"`
	IsTeacher   bool                `json:"is_teacher"`
	Assignments []TeacherAssignment `json:"assignments"`
}

type TeacherAssignment struct {
	AcademyID   uuid.UUID `json:"academy_id"`
	AcademyName string    `json:"academy_name"`
	Level       *string   `json:"level,omitempty"`
}

type ImpersonateRequest struct {
	Email string `json:"email"`
}
