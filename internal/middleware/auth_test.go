package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/iyforlando/academy-api/internal/services"
	"github.com/iyforlando/academy-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateTestToken signs with the given service. Tests that only need the
// shared test service use testutil.GenerateTestToken instead.
func generateTestToken(t *testing.T, jwtSvc *services.JWTService, profileID uuid.UUID, email string) string {
	t.Helper()
	pair, err := jwtSvc.GenerateTokenPair(profileID, email)
	require.NoError(t, err)
	return pair.AccessToken
}

func TestAuth_MissingAuthorizationHeader(t *testing.T) {
	jwtSvc := testutil.TestJWTService()
	app := drift.New()

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing authorization header")
}

func TestAuth_InvalidAuthorizationFormat_NoBearer(t *testing.T) {
	jwtSvc := testutil.TestJWTService()
	app := drift.New()

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token some-token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid authorization header format")
}

func TestAuth_InvalidAuthorizationFormat_OnlyBearer(t *testing.T) {
	jwtSvc := testutil.TestJWTService()
	app := drift.New()

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid authorization header format")
}

func TestAuth_InvalidToken(t *testing.T) {
	jwtSvc := testutil.TestJWTService()
	app := drift.New()

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	// Create service with very short expiry
	jwtSvc := services.NewJWTService("test-secret-key", 1*time.Millisecond, 24*time.Hour)
	app := drift.New()

	profileID := uuid.New()
	token := generateTestToken(t, jwtSvc, profileID, "test@example.com")

	// Wait for token to expire
	time.Sleep(10 * time.Millisecond)

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuth_WrongSecret(t *testing.T) {
	jwtSvc1 := services.NewJWTService("secret-1", 15*time.Minute, 24*time.Hour)
	jwtSvc2 := services.NewJWTService("secret-2", 15*time.Minute, 24*time.Hour)
	app := drift.New()

	// Generate token with secret-1
	profileID := uuid.New()
	token := generateTestToken(t, jwtSvc1, profileID, "test@example.com")

	// Validate with secret-2
	app.Use(Auth(jwtSvc2))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	jwtSvc := testutil.TestJWTService()
	app := drift.New()

	profileID := uuid.New()
	email := "test@example.com"
	token := testutil.GenerateTestToken(t, profileID, email)

	var extractedProfileID uuid.UUID
	var extractedEmail string

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		extractedProfileID = GetProfileID(c)
		extractedEmail = GetProfileEmail(c)
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec := testutil.DoJSON(t, app, http.MethodGet, "/protected", nil, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, profileID, extractedProfileID)
	assert.Equal(t, email, extractedEmail)
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	jwtSvc := testutil.TestJWTService()
	app := drift.New()

	profileID := uuid.New()
	token := testutil.GenerateTestToken(t, profileID, "test@example.com")

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	testCases := []string{"bearer", "BEARER", "BeArEr"}

	for _, bearer := range testCases {
		t.Run(bearer, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", bearer+" "+token)
			rec := httptest.NewRecorder()

			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGetProfileID_NotSet(t *testing.T) {
	app := drift.New()

	var extractedProfileID uuid.UUID

	app.Get("/test", func(c *drift.Context) {
		extractedProfileID = GetProfileID(c)
		_ = c.JSON(http.StatusOK, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, uuid.Nil, extractedProfileID)
}

func TestGetProfileEmail_NotSet(t *testing.T) {
	app := drift.New()

	var extractedEmail string

	app.Get("/test", func(c *drift.Context) {
		extractedEmail = GetProfileEmail(c)
		_ = c.JSON(http.StatusOK, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, "", extractedEmail)
}

type stubProfiles struct {
	profile *models.Profile
}

func (s *stubProfiles) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return s.profile, nil
}

type stubScopes struct {
	assignments []authz.Assignment
}

func (s *stubScopes) AssignmentsFor(ctx context.Context, email string) ([]authz.Assignment, error) {
	return s.assignments, nil
}

func TestResolve_SetsAccess(t *testing.T) {
	jwtSvc := testutil.TestJWTService()
	profileID := uuid.New()

	profiles := &stubProfiles{profile: &models.Profile{ID: profileID, Email: "admin@example.com", Role: models.StoredRoleAdmin}}
	resolver := authz.NewResolver(profiles, &stubScopes{}, authz.NewMemoryImpersonationStore())

	app := drift.New()
	app.Use(Auth(jwtSvc))
	app.Use(Resolve(resolver))

	var access *authz.Access
	app.Get("/test", func(c *drift.Context) {
		access = GetAccess(c)
		_ = c.JSON(http.StatusOK, nil)
	})

	token := testutil.GenerateTestToken(t, profileID, "Admin@Example.com")
	rec := testutil.DoJSON(t, app, http.MethodGet, "/test", nil, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, access)
	assert.Equal(t, authz.RoleAdmin, access.Role)
	assert.Equal(t, "admin@example.com", access.Email)
}

func TestRequireAdmin(t *testing.T) {
	testCases := []struct {
		name     string
		role     authz.Role
		expected int
	}{
		{"admin allowed", authz.RoleAdmin, http.StatusOK},
		{"teacher forbidden", authz.RoleTeacher, http.StatusForbidden},
		{"viewer forbidden", authz.RoleViewer, http.StatusForbidden},
		{"unauthorized forbidden", authz.RoleUnauthorized, http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := drift.New()
			app.Use(func(c *drift.Context) {
				c.Set(AccessKey, &authz.Access{Role: tc.role})
				c.Next()
			})
			app.Use(RequireAdmin())
			app.Get("/admin", func(c *drift.Context) {
				_ = c.JSON(http.StatusOK, nil)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			rec := httptest.NewRecorder()

			app.ServeHTTP(rec, req)

			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	testCases := []struct {
		name     string
		role     authz.Role
		expected int
	}{
		{"admin allowed", authz.RoleAdmin, http.StatusOK},
		{"teacher allowed", authz.RoleTeacher, http.StatusOK},
		{"viewer allowed", authz.RoleViewer, http.StatusOK},
		{"unauthorized forbidden", authz.RoleUnauthorized, http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := drift.New()
			app.Use(func(c *drift.Context) {
				c.Set(AccessKey, &authz.Access{Role: tc.role})
				c.Next()
			})
			app.Use(RequireRole())
			app.Get("/staff", func(c *drift.Context) {
				_ = c.JSON(http.StatusOK, nil)
			})

			req := httptest.NewRequest(http.MethodGet, "/staff", nil)
			rec := httptest.NewRecorder()

			app.ServeHTTP(rec, req)

			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}
