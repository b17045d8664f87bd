package handlers

import (
	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/middleware"
	"github.com/iyforlando/academy-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type SessionHandler struct {
	resolver ResolverInterface
}

func NewSessionHandler(resolver ResolverInterface) *SessionHandler {
	return &SessionHandler{resolver: resolver}
}

// Get returns the resolved authorization context for the caller. The
// frontend drives its route guards and role-based rendering off this
// response alone.
func (h *SessionHandler) Get(c *drift.Context) {
	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}

	_ = c.JSON(200, toSessionResponse(access))
}

// Impersonate switches an admin's view to another email. Non-admin calls
// are accepted and ignored, so the response is always the caller's current
// session after the attempt.
func (h *SessionHandler) Impersonate(c *drift.Context) {
	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.ImpersonateRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Email == "" {
		c.BadRequest("email is required")
		return
	}

	ctx := c.Request.Context()

	if err := h.resolver.Impersonate(ctx, access, req.Email); err != nil {
		c.InternalServerError("failed to start impersonation")
		return
	}

	h.respondResolved(c, access)
}

// StopImpersonation returns the caller to their own view.
func (h *SessionHandler) StopImpersonation(c *drift.Context) {
	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}

	if err := h.resolver.StopImpersonation(c.Request.Context(), access); err != nil {
		c.InternalServerError("failed to stop impersonation")
		return
	}

	h.respondResolved(c, access)
}

// respondResolved re-resolves the session so the response reflects the
// impersonation state that was just written.
func (h *SessionHandler) respondResolved(c *drift.Context, access *authz.Access) {
	session := &authz.Session{ProfileID: access.ProfileID, Email: access.Email}
	fresh, err := h.resolver.Resolve(c.Request.Context(), session)
	if err != nil {
		c.InternalServerError("failed to resolve session")
		return
	}

	_ = c.JSON(200, toSessionResponse(fresh))
}

func toSessionResponse(access *authz.Access) dto.SessionResponse {
	resp := dto.SessionResponse{
		Role:              string(access.Role),
		IsAdmin:           access.IsAdmin(),
		IsTeacher:         access.IsTeacher(),
		ImpersonatedEmail: access.ImpersonatedEmail,
	}

	if access.Teacher != nil {
		tp := &dto.TeacherProfileResponse{
			Email:       access.Teacher.Email,
			IsTeacher:   access.Teacher.IsTeacher,
			Assignments: make([]dto.TeacherAssignment, 0, len(access.Teacher.Assignments)),
		}
		for _, a := range access.Teacher.Assignments {
			tp.Assignments = append(tp.Assignments, dto.TeacherAssignment{
				AcademyID:   a.AcademyID,
				AcademyName: a.AcademyName,
				Level:       a.Level,
			})
		}
		resp.TeacherProfile = tp
	}

	return resp
}
