package authz

import "github.com/google/uuid"

// Assignment says "this email teaches this academy" (Level == nil) or
// "this email teaches this specific level" (Level set). Assignments are
// always recomputed from the academies/levels tables, never persisted, so
// they cannot drift from the source of truth.
type Assignment struct {
	AcademyID   uuid.UUID `json:"academy_id"`
	AcademyName string    `json:"academy_name"`
	Level       *string   `json:"level,omitempty"`
}

// TeacherProfile is the resolved teaching scope for one email.
type TeacherProfile struct {
	Email       string       `json:"email"`
	IsTeacher   bool         `json:"is_teacher"`
	Assignments []Assignment `json:"assignments"`
}

// CanAccess reports whether the profile may act on the given academy, or on
// a specific level of it when level is supplied. A whole-academy assignment
// (Level == nil) subsumes every level; an assignment for a different level
// of the same academy does not grant access. Pure, no I/O.
func (tp *TeacherProfile) CanAccess(academyID uuid.UUID, level ...string) bool {
	if tp == nil {
		return false
	}
	for _, a := range tp.Assignments {
		if a.AcademyID != academyID {
			continue
		}
		if len(level) == 0 {
			return true
		}
		if a.Level == nil || *a.Level == level[0] {
			return true
		}
	}
	return false
}
