package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		stored   string
		expected Role
	}{
		{"admin", RoleAdmin},
		{"superuser", RoleAdmin},
		{"teacher", RoleTeacher},
		{"viewer", RoleViewer},
		{"ADMIN", RoleAdmin},
		{"  Teacher  ", RoleTeacher},
		{"", RoleUnauthorized},
		{"owner", RoleUnauthorized},
		{"root", RoleUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.stored, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseRole(tc.stored))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"Teacher@Example.COM", "teacher@example.com"},
		{"  plain@example.com  ", "plain@example.com"},
		{"", ""},
		{"  ", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizeEmail(tc.in))
	}
}
