package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/middleware"
	"github.com/iyforlando/academy-api/pkg/dto"
	"github.com/iyforlando/academy-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setAccess installs a pre-resolved access on the context, standing in for
// the Auth+Resolve middleware pair.
func setAccess(access *authz.Access) drift.HandlerFunc {
	return func(c *drift.Context) {
		c.Set(middleware.AccessKey, access)
		c.Next()
	}
}

func adminAccess(profileID uuid.UUID) *authz.Access {
	return &authz.Access{
		ProfileID: profileID,
		Email:     "admin@example.com",
		Role:      authz.RoleAdmin,
		Teacher:   &authz.TeacherProfile{Email: "admin@example.com"},
	}
}

func teacherAccess(profileID, academyID uuid.UUID) *authz.Access {
	return &authz.Access{
		ProfileID: profileID,
		Email:     "coach@example.com",
		Role:      authz.RoleTeacher,
		Teacher: &authz.TeacherProfile{
			Email:     "coach@example.com",
			IsTeacher: true,
			Assignments: []authz.Assignment{
				{AcademyID: academyID, AcademyName: "Soccer"},
			},
		},
	}
}

func TestSessionHandler_Get_Admin(t *testing.T) {
	mockResolver := new(testutil.MockResolver)
	handler := NewSessionHandler(mockResolver)
	profileID := uuid.New()

	app := drift.New()
	app.Use(setAccess(adminAccess(profileID)))
	app.Get("/session", handler.Get)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.SessionResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "admin", response.Role)
	assert.True(t, response.IsAdmin)
	assert.False(t, response.IsTeacher)
	assert.Empty(t, response.ImpersonatedEmail)
}

func TestSessionHandler_Get_TeacherWithAssignments(t *testing.T) {
	mockResolver := new(testutil.MockResolver)
	handler := NewSessionHandler(mockResolver)
	academyID := uuid.New()

	app := drift.New()
	app.Use(setAccess(teacherAccess(uuid.New(), academyID)))
	app.Get("/session", handler.Get)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.SessionResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "teacher", response.Role)
	assert.True(t, response.IsTeacher)
	require.NotNil(t, response.TeacherProfile)
	require.Len(t, response.TeacherProfile.Assignments, 1)
	assert.Equal(t, academyID, response.TeacherProfile.Assignments[0].AcademyID)
	assert.Equal(t, "Soccer", response.TeacherProfile.Assignments[0].AcademyName)
}

func TestSessionHandler_Get_NotAuthenticated(t *testing.T) {
	mockResolver := new(testutil.MockResolver)
	handler := NewSessionHandler(mockResolver)

	app := drift.New()
	app.Get("/session", handler.Get)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionHandler_Impersonate_Success(t *testing.T) {
	mockResolver := new(testutil.MockResolver)
	handler := NewSessionHandler(mockResolver)

	profileID := uuid.New()
	academyID := uuid.New()
	admin := adminAccess(profileID)

	impersonated := &authz.Access{
		ProfileID:         profileID,
		Email:             "admin@example.com",
		Role:              authz.RoleTeacher,
		ImpersonatedEmail: "coach@example.com",
		Teacher: &authz.TeacherProfile{
			Email:     "coach@example.com",
			IsTeacher: true,
			Assignments: []authz.Assignment{
				{AcademyID: academyID, AcademyName: "Soccer"},
			},
		},
	}

	mockResolver.On("Impersonate", mock.Anything, admin, "coach@example.com").Return(nil)
	mockResolver.On("Resolve", mock.Anything, &authz.Session{ProfileID: profileID, Email: "admin@example.com"}).
		Return(impersonated, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(setAccess(admin))
	app.Post("/session/impersonate", handler.Impersonate)

	body := dto.ImpersonateRequest{Email: "coach@example.com"}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/session/impersonate", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.SessionResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	// Response reflects the state that was just written
	assert.Equal(t, "teacher", response.Role)
	assert.Equal(t, "coach@example.com", response.ImpersonatedEmail)
	assert.True(t, response.IsTeacher)

	mockResolver.AssertExpectations(t)
}

func TestSessionHandler_Impersonate_EmptyEmail(t *testing.T) {
	mockResolver := new(testutil.MockResolver)
	handler := NewSessionHandler(mockResolver)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(setAccess(adminAccess(uuid.New())))
	app.Post("/session/impersonate", handler.Impersonate)

	body := dto.ImpersonateRequest{Email: ""}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/session/impersonate", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email is required")
}

func TestSessionHandler_StopImpersonation_Success(t *testing.T) {
	mockResolver := new(testutil.MockResolver)
	handler := NewSessionHandler(mockResolver)

	profileID := uuid.New()
	admin := adminAccess(profileID)

	mockResolver.On("StopImpersonation", mock.Anything, admin).Return(nil)
	mockResolver.On("Resolve", mock.Anything, &authz.Session{ProfileID: profileID, Email: "admin@example.com"}).
		Return(admin, nil)

	app := drift.New()
	app.Use(setAccess(admin))
	app.Delete("/session/impersonate", handler.StopImpersonation)

	req := httptest.NewRequest(http.MethodDelete, "/session/impersonate", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.SessionResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "admin", response.Role)
	assert.Empty(t, response.ImpersonatedEmail)

	mockResolver.AssertExpectations(t)
}
