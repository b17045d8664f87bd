package authz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	profiles map[uuid.UUID]*models.Profile
	err      error
	delay    time.Duration
}

func (f *fakeProfiles) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

type fakeScopes struct {
	assignments map[string][]Assignment
	err         error
}

func (f *fakeScopes) AssignmentsFor(ctx context.Context, email string) ([]Assignment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.assignments[email], nil
}

func newTestResolver(profiles *fakeProfiles, scopes *fakeScopes) (*Resolver, *MemoryImpersonationStore) {
	store := NewMemoryImpersonationStore()
	return NewResolver(profiles, scopes, store), store
}

func TestResolve_NilSession(t *testing.T) {
	resolver, _ := newTestResolver(&fakeProfiles{}, &fakeScopes{})

	access, err := resolver.Resolve(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, RoleUnauthorized, access.Role)
	assert.False(t, access.IsAdmin())
	assert.False(t, access.IsTeacher())
}

func TestResolve_AdminProfile(t *testing.T) {
	profileID := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*models.Profile{
		profileID: {ID: profileID, Email: "admin@example.com", Role: models.StoredRoleAdmin},
	}}
	resolver, _ := newTestResolver(profiles, &fakeScopes{})

	access, err := resolver.Resolve(context.Background(), &Session{ProfileID: profileID, Email: "Admin@Example.com"})

	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, access.Role)
	assert.Equal(t, "admin@example.com", access.Email)
	assert.True(t, access.IsAdmin())
	assert.False(t, access.IsTeacher())
	require.NotNil(t, access.Teacher)
	assert.Empty(t, access.Teacher.Assignments)
}

func TestResolve_SuperuserMapsToAdmin(t *testing.T) {
	profileID := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*models.Profile{
		profileID: {ID: profileID, Email: "root@example.com", Role: models.StoredRoleSuperuser},
	}}
	resolver, _ := newTestResolver(profiles, &fakeScopes{})

	access, err := resolver.Resolve(context.Background(), &Session{ProfileID: profileID, Email: "root@example.com"})

	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, access.Role)
}

func TestResolve_TeacherWithAssignments(t *testing.T) {
	profileID := uuid.New()
	academyID := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*models.Profile{
		profileID: {ID: profileID, Email: "coach@example.com", Role: models.StoredRoleTeacher},
	}}
	scopes := &fakeScopes{assignments: map[string][]Assignment{
		"coach@example.com": {{AcademyID: academyID, AcademyName: "Soccer"}},
	}}
	resolver, _ := newTestResolver(profiles, scopes)

	access, err := resolver.Resolve(context.Background(), &Session{ProfileID: profileID, Email: "Coach@Example.COM"})

	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, access.Role)
	assert.True(t, access.IsTeacher())
	assert.True(t, access.Teacher.CanAccess(academyID))
}

func TestResolve_ProfileLookupFailure_FailsClosed(t *testing.T) {
	profiles := &fakeProfiles{err: errors.New("connection refused")}
	resolver, _ := newTestResolver(profiles, &fakeScopes{})

	access, err := resolver.Resolve(context.Background(), &Session{ProfileID: uuid.New(), Email: "anyone@example.com"})

	require.NoError(t, err)
	assert.Equal(t, RoleUnauthorized, access.Role)
	assert.False(t, access.IsAdmin())
}

func TestResolve_UnknownProfile_FailsClosed(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*models.Profile{}}
	resolver, _ := newTestResolver(profiles, &fakeScopes{})

	access, err := resolver.Resolve(context.Background(), &Session{ProfileID: uuid.New(), Email: "stranger@example.com"})

	require.NoError(t, err)
	assert.Equal(t, RoleUnauthorized, access.Role)
}

func TestResolve_ScopeQueryFailure_NonTeacher(t *testing.T) {
	profileID := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*models.Profile{
		profileID: {ID: profileID, Email: "coach@example.com", Role: models.StoredRoleTeacher},
	}}
	scopes := &fakeScopes{err: errors.New("query timeout")}
	resolver, _ := newTestResolver(profiles, scopes)

	access, err := resolver.Resolve(context.Background(), &Session{ProfileID: profileID, Email: "coach@example.com"})

	require.NoError(t, err)
	// Stored role survives, but a failed scope query yields an empty scope
	assert.Equal(t, RoleTeacher, access.Role)
	assert.False(t, access.IsTeacher())
	require.NotNil(t, access.Teacher)
	assert.Empty(t, access.Teacher.Assignments)
}

func TestResolve_ContextCancelled(t *testing.T) {
	profileID := uuid.New()
	profiles := &fakeProfiles{
		profiles: map[uuid.UUID]*models.Profile{
			profileID: {ID: profileID, Email: "slow@example.com", Role: models.StoredRoleAdmin},
		},
		delay: 500 * time.Millisecond,
	}
	resolver, _ := newTestResolver(profiles, &fakeScopes{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := resolver.Resolve(ctx, &Session{ProfileID: profileID, Email: "slow@example.com"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolve_AdminImpersonatingTeacher(t *testing.T) {
	adminID := uuid.New()
	academyID := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*models.Profile{
		adminID: {ID: adminID, Email: "admin@example.com", Role: models.StoredRoleAdmin},
	}}
	scopes := &fakeScopes{assignments: map[string][]Assignment{
		"ms.kim@example.com": {{AcademyID: academyID, AcademyName: "Korean"}},
	}}
	resolver, store := newTestResolver(profiles, scopes)

	require.NoError(t, store.Set(context.Background(), adminID, "Ms.Kim@Example.com"))

	access, err := resolver.Resolve(context.Background(), &Session{ProfileID: adminID, Email: "admin@example.com"})

	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, access.Role)
	assert.Equal(t, "ms.kim@example.com", access.ImpersonatedEmail)
	assert.True(t, access.IsTeacher())
	assert.Equal(t, "ms.kim@example.com", access.Teacher.Email)
	assert.True(t, access.Teacher.CanAccess(academyID))
}

func TestResolve_AdminImpersonatingNonTeacher_KeepsAdminRole(t *testing.T) {
	adminID := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*models.Profile{
		adminID: {ID: adminID, Email: "admin@example.com", Role: models.StoredRoleAdmin},
	}}
	resolver, store := newTestResolver(profiles, &fakeScopes{})

	require.NoError(t, store.Set(context.Background(), adminID, "nobody@example.com"))

	access, err := resolver.Resolve(context.Background(), &Session{ProfileID: adminID, Email: "admin@example.com"})

	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, access.Role)
	assert.Equal(t, "nobody@example.com", access.ImpersonatedEmail)
	assert.False(t, access.IsTeacher())
}

func TestResolve_StaleImpersonationForNonAdmin_Ignored(t *testing.T) {
	teacherID := uuid.New()
	ownAcademy := uuid.New()
	otherAcademy := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*models.Profile{
		teacherID: {ID: teacherID, Email: "coach@example.com", Role: models.StoredRoleTeacher},
	}}
	scopes := &fakeScopes{assignments: map[string][]Assignment{
		"coach@example.com": {{AcademyID: ownAcademy, AcademyName: "Soccer"}},
		"other@example.com": {{AcademyID: otherAcademy, AcademyName: "Korean"}},
	}}
	resolver, store := newTestResolver(profiles, scopes)

	// State left behind from before a demotion
	require.NoError(t, store.Set(context.Background(), teacherID, "other@example.com"))

	access, err := resolver.Resolve(context.Background(), &Session{ProfileID: teacherID, Email: "coach@example.com"})

	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, access.Role)
	assert.Empty(t, access.ImpersonatedEmail)
	// Scope belongs to the caller, not the stale target
	assert.True(t, access.Teacher.CanAccess(ownAcademy))
	assert.False(t, access.Teacher.CanAccess(otherAcademy))
}

func TestImpersonate_NonAdminIsNoOp(t *testing.T) {
	resolver, store := newTestResolver(&fakeProfiles{}, &fakeScopes{})
	callerID := uuid.New()
	caller := &Access{ProfileID: callerID, Role: RoleTeacher}

	require.NoError(t, resolver.Impersonate(context.Background(), caller, "target@example.com"))

	email, err := store.Get(context.Background(), callerID)
	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestImpersonate_NilCallerIsNoOp(t *testing.T) {
	resolver, _ := newTestResolver(&fakeProfiles{}, &fakeScopes{})

	assert.NoError(t, resolver.Impersonate(context.Background(), nil, "target@example.com"))
}

func TestImpersonate_AdminNormalizesEmail(t *testing.T) {
	resolver, store := newTestResolver(&fakeProfiles{}, &fakeScopes{})
	adminID := uuid.New()
	caller := &Access{ProfileID: adminID, Role: RoleAdmin}

	require.NoError(t, resolver.Impersonate(context.Background(), caller, "  Target@Example.COM "))

	email, err := store.Get(context.Background(), adminID)
	require.NoError(t, err)
	assert.Equal(t, "target@example.com", email)
}

func TestStopImpersonation_ClearsState(t *testing.T) {
	resolver, store := newTestResolver(&fakeProfiles{}, &fakeScopes{})
	adminID := uuid.New()
	caller := &Access{ProfileID: adminID, Role: RoleAdmin}

	require.NoError(t, resolver.Impersonate(context.Background(), caller, "target@example.com"))
	require.NoError(t, resolver.StopImpersonation(context.Background(), caller))

	email, err := store.Get(context.Background(), adminID)
	require.NoError(t, err)
	assert.Empty(t, email)
}
