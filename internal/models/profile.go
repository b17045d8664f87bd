package models

import (
	"time"

	"github.com/google/uuid"
)

// Stored role strings. "superuser" is a legacy value that maps to admin
// at the authz boundary.
const (
	StoredRoleSuperuser = "superuser"
	StoredRoleAdmin     = "admin"
	StoredRoleTeacher   = "teacher"
	StoredRoleViewer    = "viewer"
)

type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
