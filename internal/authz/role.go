package authz

import "strings"

// Role is the application-level role exposed to route guards and handlers.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleTeacher      Role = "teacher"
	RoleViewer       Role = "viewer"
	RoleUnauthorized Role = "unauthorized"
)

// ParseRole maps a stored profile role string to a Role. "superuser" is a
// legacy value kept in the database and maps to admin. Anything unknown is
// unauthorized.
func ParseRole(stored string) Role {
	switch strings.ToLower(strings.TrimSpace(stored)) {
	case "superuser", "admin":
		return RoleAdmin
	case "teacher":
		return RoleTeacher
	case "viewer":
		return RoleViewer
	default:
		return RoleUnauthorized
	}
}

// NormalizeEmail is the single normalization point for every email
// comparison: profile lookup, assignment matching and the impersonation key.
// Source data has inconsistent casing, so matching must be case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
