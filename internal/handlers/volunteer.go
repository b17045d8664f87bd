package handlers

import (
	"context"
	"time"

	"github.com/iyforlando/academy-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type VolunteerHandler struct {
	volunteerService VolunteerServiceInterface
}

func NewVolunteerHandler(volunteerService VolunteerServiceInterface) *VolunteerHandler {
	return &VolunteerHandler{volunteerService: volunteerService}
}

func (h *VolunteerHandler) Log(c *drift.Context) {
	var req dto.LogVolunteerHoursRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Email == "" {
		c.BadRequest("email is required")
		return
	}

	servedOn, err := time.Parse("2006-01-02", req.ServedOn)
	if err != nil {
		c.BadRequest("served_on must be YYYY-MM-DD")
		return
	}

	entry, err := h.volunteerService.Log(context.Background(), req.Email, req.Name, req.Activity, req.Hours, servedOn)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	_ = c.JSON(201, entry)
}

func (h *VolunteerHandler) ListByEmail(c *drift.Context) {
	email := c.QueryParam("email")
	if email == "" {
		c.BadRequest("email is required")
		return
	}

	entries, err := h.volunteerService.ListByEmail(context.Background(), email)
	if err != nil {
		c.InternalServerError("failed to list volunteer hours")
		return
	}

	_ = c.JSON(200, entries)
}

func (h *VolunteerHandler) Total(c *drift.Context) {
	email := c.QueryParam("email")
	if email == "" {
		c.BadRequest("email is required")
		return
	}

	hours, err := h.volunteerService.TotalHours(context.Background(), email)
	if err != nil {
		c.InternalServerError("failed to compute volunteer hours")
		return
	}

	_ = c.JSON(200, dto.VolunteerTotalResponse{Email: email, Hours: hours})
}
