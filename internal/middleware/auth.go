package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	ProfileIDKey    = "profile_id"
	ProfileEmailKey = "profile_email"
	AccessKey       = "access"
)

func Auth(jwtService *services.JWTService) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(ProfileIDKey, claims.ProfileID)
		c.Set(ProfileEmailKey, claims.Email)

		c.Next()
	}
}

// Resolve turns the authenticated identity into an authz.Access and stores
// it on the context. It does not reject: an identity without a profile
// resolves to the unauthorized role and route guards decide what to do.
func Resolve(resolver *authz.Resolver) drift.HandlerFunc {
	return func(c *drift.Context) {
		session := sessionFrom(c)

		access, err := resolver.Resolve(c.Request.Context(), session)
		if err != nil {
			// Only context cancellation reaches here.
			c.Unauthorized("authorization not resolved")
			return
		}

		c.Set(AccessKey, access)
		c.Next()
	}
}

// RequireAdmin guards admin-only routes. Must run after Resolve.
func RequireAdmin() drift.HandlerFunc {
	return func(c *drift.Context) {
		if !GetAccess(c).IsAdmin() {
			c.Forbidden("admin access required")
			return
		}
		c.Next()
	}
}

// RequireRole guards routes that any resolved role short of unauthorized
// may use.
func RequireRole() drift.HandlerFunc {
	return func(c *drift.Context) {
		access := GetAccess(c)
		if access == nil || access.Role == authz.RoleUnauthorized {
			c.Forbidden("no role assigned")
			return
		}
		c.Next()
	}
}

func sessionFrom(c *drift.Context) *authz.Session {
	profileID := GetProfileID(c)
	if profileID == uuid.Nil {
		return nil
	}
	return &authz.Session{ProfileID: profileID, Email: GetProfileEmail(c)}
}

func GetProfileID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(ProfileIDKey); ok {
		if pid, ok := id.(uuid.UUID); ok {
			return pid
		}
	}
	return uuid.Nil
}

func GetProfileEmail(c *drift.Context) string {
	if email, ok := c.Get(ProfileEmailKey); ok {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

func GetAccess(c *drift.Context) *authz.Access {
	if v, ok := c.Get(AccessKey); ok {
		if access, ok := v.(*authz.Access); ok {
			return access
		}
	}
	return nil
}
