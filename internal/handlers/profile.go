package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/middleware"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/iyforlando/academy-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type ProfileHandler struct {
	profileService ProfileServiceInterface
}

func NewProfileHandler(profileService ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Me(c *drift.Context) {
	profileID := middleware.GetProfileID(c)
	if profileID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	profile, err := h.profileService.GetByID(context.Background(), profileID)
	if err != nil {
		c.NotFound("profile not found")
		return
	}

	_ = c.JSON(200, toProfileResponse(profile))
}

func (h *ProfileHandler) List(c *drift.Context) {
	profiles, err := h.profileService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list profiles")
		return
	}

	response := make([]dto.ProfileResponse, len(profiles))
	for i := range profiles {
		response[i] = toProfileResponse(&profiles[i])
	}

	_ = c.JSON(200, response)
}

func (h *ProfileHandler) UpdateRole(c *drift.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid profile id")
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	switch req.Role {
	case models.StoredRoleSuperuser, models.StoredRoleAdmin, models.StoredRoleTeacher, models.StoredRoleViewer:
	default:
		c.BadRequest("invalid role: " + req.Role)
		return
	}

	profile, err := h.profileService.UpdateRole(context.Background(), profileID, req.Role)
	if err != nil {
		c.NotFound("profile not found")
		return
	}

	_ = c.JSON(200, toProfileResponse(profile))
}

func toProfileResponse(p *models.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        p.Role,
	}
}
