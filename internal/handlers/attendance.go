package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/middleware"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/iyforlando/academy-api/internal/services"
	"github.com/iyforlando/academy-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AttendanceHandler struct {
	attendanceService AttendanceServiceInterface
	academyService    AcademyServiceInterface
	hub               HubInterface
}

func NewAttendanceHandler(attendanceService AttendanceServiceInterface, academyService AcademyServiceInterface, hub HubInterface) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, academyService: academyService, hub: hub}
}

// RecordSession records one class day's attendance in a single call.
// Admins can record anywhere; teachers only inside their scope. A
// level-scoped teacher can only record for their own level.
func (h *AttendanceHandler) RecordSession(c *drift.Context) {
	academyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid academy id")
		return
	}

	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !access.IsAdmin() && !access.Teacher.CanAccess(academyID) {
		c.Forbidden("not assigned to this academy")
		return
	}

	var req dto.RecordAttendanceRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	heldOn, err := time.Parse("2006-01-02", req.HeldOn)
	if err != nil {
		c.BadRequest("held_on must be YYYY-MM-DD")
		return
	}

	if len(req.Entries) == 0 {
		c.BadRequest("entries are required")
		return
	}

	entries := make([]services.AttendanceEntry, len(req.Entries))
	for i, e := range req.Entries {
		switch e.Status {
		case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLate:
		default:
			c.BadRequest("invalid attendance status: " + e.Status)
			return
		}
		entries[i] = services.AttendanceEntry{StudentID: e.StudentID, Status: e.Status}
	}

	if req.LevelID != nil {
		levels, err := h.academyService.ListLevels(context.Background(), academyID)
		if err != nil {
			c.InternalServerError("failed to look up level")
			return
		}
		var levelName string
		found := false
		for _, level := range levels {
			if level.ID == *req.LevelID {
				levelName = level.Name
				found = true
				break
			}
		}
		if !found {
			c.BadRequest("level does not belong to this academy")
			return
		}
		if !access.IsAdmin() && !access.Teacher.CanAccess(academyID, levelName) {
			c.Forbidden("not assigned to this level")
			return
		}
	}

	session, err := h.attendanceService.RecordSession(context.Background(), academyID, req.LevelID, heldOn, entries)
	if err != nil {
		c.InternalServerError("failed to record attendance")
		return
	}

	h.hub.BroadcastAttendance(academyID, session.ID)

	_ = c.JSON(201, session)
}

func (h *AttendanceHandler) ListSessions(c *drift.Context) {
	academyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid academy id")
		return
	}

	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !access.IsAdmin() && !access.Teacher.CanAccess(academyID) {
		c.Forbidden("not assigned to this academy")
		return
	}

	sessions, err := h.attendanceService.ListSessions(context.Background(), academyID)
	if err != nil {
		c.InternalServerError("failed to list sessions")
		return
	}

	_ = c.JSON(200, sessions)
}

func (h *AttendanceHandler) Summary(c *drift.Context) {
	academyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid academy id")
		return
	}

	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !access.IsAdmin() && !access.Teacher.CanAccess(academyID) {
		c.Forbidden("not assigned to this academy")
		return
	}

	summary, err := h.attendanceService.SummaryByAcademy(context.Background(), academyID)
	if err != nil {
		c.InternalServerError("failed to compute attendance summary")
		return
	}

	_ = c.JSON(200, summary)
}
