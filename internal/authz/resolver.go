package authz

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/models"
)

// Session is the authenticated identity extracted from a verified access
// token. A nil session means no identity.
type Session struct {
	ProfileID uuid.UUID
	Email     string
}

// Access is the resolved authorization context for one request: the
// effective role, the teaching scope, and any active impersonation.
type Access struct {
	ProfileID         uuid.UUID       `json:"profile_id"`
	Email             string          `json:"email"`
	Role              Role            `json:"role"`
	Teacher           *TeacherProfile `json:"teacher,omitempty"`
	ImpersonatedEmail string          `json:"impersonated_email,omitempty"`
}

func (a *Access) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

func (a *Access) IsTeacher() bool {
	return a != nil && a.Teacher != nil && a.Teacher.IsTeacher
}

// ProfileDirectory looks up the stored profile for an identity.
type ProfileDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// ScopeDirectory assembles the teaching assignments for an email.
type ScopeDirectory interface {
	AssignmentsFor(ctx context.Context, email string) ([]Assignment, error)
}

// Resolver turns a session into an Access. Every failure on the way
// collapses to minimum privilege: a missing or unreadable profile is
// unauthorized, a failed scope query is non-teacher. It never returns a
// permissive default and never surfaces backend errors to the caller.
type Resolver struct {
	profiles ProfileDirectory
	scopes   ScopeDirectory
	store    ImpersonationStore
}

func NewResolver(profiles ProfileDirectory, scopes ScopeDirectory, store ImpersonationStore) *Resolver {
	return &Resolver{profiles: profiles, scopes: scopes, store: store}
}

// Resolve runs the profile lookup and the teacher-scope assembly
// concurrently and returns only when both have settled. Cancelling ctx
// aborts both in-flight queries, so a stale resolution for a previous
// identity can be dropped mid-flight. The only returned error is ctx's.
func (r *Resolver) Resolve(ctx context.Context, session *Session) (*Access, error) {
	if session == nil {
		return &Access{Role: RoleUnauthorized}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	email := NormalizeEmail(session.Email)

	type profileResult struct {
		role Role
	}
	type scopeResult struct {
		impersonated string
		teacher      *TeacherProfile
	}

	profileCh := make(chan profileResult, 1)
	scopeCh := make(chan scopeResult, 1)

	go func() {
		profile, err := r.profiles.GetByID(ctx, session.ProfileID)
		if err != nil || profile == nil {
			if err != nil && ctx.Err() == nil {
				log.Printf("authz: profile lookup failed for %s: %v", session.ProfileID, err)
			}
			profileCh <- profileResult{role: RoleUnauthorized}
			return
		}
		profileCh <- profileResult{role: ParseRole(profile.Role)}
	}()

	go func() {
		impersonated, err := r.store.Get(ctx, session.ProfileID)
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("authz: impersonation lookup failed for %s: %v", session.ProfileID, err)
			}
			impersonated = ""
		}
		impersonated = NormalizeEmail(impersonated)

		target := email
		if impersonated != "" {
			target = impersonated
		}
		scopeCh <- scopeResult{
			impersonated: impersonated,
			teacher:      r.assembleScope(ctx, target),
		}
	}()

	var pr profileResult
	var sr scopeResult
	for i := 0; i < 2; i++ {
		select {
		case pr = <-profileCh:
		case sr = <-scopeCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	access := &Access{
		ProfileID: session.ProfileID,
		Email:     email,
		Role:      pr.role,
		Teacher:   sr.teacher,
	}

	if sr.impersonated != "" {
		if pr.role != RoleAdmin {
			// Stale state for a non-admin: ignore it and rebuild the
			// scope for the caller's own email.
			access.Teacher = r.assembleScope(ctx, email)
			return access, nil
		}
		access.ImpersonatedEmail = sr.impersonated
		if sr.teacher.IsTeacher {
			access.Role = RoleTeacher
		}
		// When the impersonated email teaches nothing the admin keeps
		// their underlying role. Known loose fallback, kept as-is.
	}

	return access, nil
}

// assembleScope never returns nil and never a partial result: a failed
// query yields an empty non-teacher scope.
func (r *Resolver) assembleScope(ctx context.Context, email string) *TeacherProfile {
	tp := &TeacherProfile{Email: email}
	if email == "" {
		return tp
	}

	assignments, err := r.scopes.AssignmentsFor(ctx, email)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("authz: scope query failed for %s: %v", email, err)
		}
		return tp
	}

	tp.Assignments = assignments
	tp.IsTeacher = len(assignments) > 0
	return tp
}

// Impersonate switches caller's view to the given email. Calls by
// non-admins are silently ignored, matching the dashboard's behavior.
func (r *Resolver) Impersonate(ctx context.Context, caller *Access, email string) error {
	if !caller.IsAdmin() {
		return nil
	}
	email = NormalizeEmail(email)
	if email == "" {
		return nil
	}
	return r.store.Set(ctx, caller.ProfileID, email)
}

// StopImpersonation returns the caller to their own view and clears the
// durable state.
func (r *Resolver) StopImpersonation(ctx context.Context, caller *Access) error {
	if caller == nil {
		return nil
	}
	return r.store.Clear(ctx, caller.ProfileID)
}
