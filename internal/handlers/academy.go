package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/middleware"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/iyforlando/academy-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AcademyHandler struct {
	academyService AcademyServiceInterface
}

func NewAcademyHandler(academyService AcademyServiceInterface) *AcademyHandler {
	return &AcademyHandler{academyService: academyService}
}

func (h *AcademyHandler) Create(c *drift.Context) {
	var req dto.CreateAcademyRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}
	if req.Season == "" {
		c.BadRequest("season is required")
		return
	}

	academy, err := h.academyService.Create(context.Background(), req.Name, req.Season, req.HasLevels, req.TeacherEmail)
	if err != nil {
		c.InternalServerError("failed to create academy")
		return
	}

	_ = c.JSON(201, academy)
}

// List returns every academy for admins. Teachers get only the academies
// they are assigned to, whether whole-academy or per-level.
func (h *AcademyHandler) List(c *drift.Context) {
	season := c.QueryParam("season")

	academies, err := h.academyService.List(context.Background(), season)
	if err != nil {
		c.InternalServerError("failed to list academies")
		return
	}

	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !access.IsAdmin() && access.IsTeacher() {
		scoped := make([]models.Academy, 0, len(academies))
		for _, a := range academies {
			if access.Teacher.CanAccess(a.ID) {
				scoped = append(scoped, a)
			}
		}
		academies = scoped
	}

	_ = c.JSON(200, academies)
}

func (h *AcademyHandler) Get(c *drift.Context) {
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

	academy, err := h.academyService.GetByID(context.Background(), academyID)
	if err != nil {
		c.NotFound("academy not found")
		return
	}

	_ = c.JSON(200, academy)
}

func (h *AcademyHandler) Update(c *drift.Context) {
	academyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid academy id")
		return
	}

	var req dto.UpdateAcademyRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	academy, err := h.academyService.Update(context.Background(), academyID, req.Name, req.HasLevels, req.TeacherEmail)
	if err != nil {
		c.NotFound("academy not found")
		return
	}

	_ = c.JSON(200, academy)
}

func (h *AcademyHandler) Delete(c *drift.Context) {
	academyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid academy id")
		return
	}

	if err := h.academyService.Delete(context.Background(), academyID); err != nil {
		c.InternalServerError("failed to delete academy")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "academy deleted"})
}

func (h *AcademyHandler) AddLevel(c *drift.Context) {
	academyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid academy id")
		return
	}

	var req dto.CreateLevelRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	level, err := h.academyService.AddLevel(context.Background(), academyID, req.Name, req.TeacherEmail)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	_ = c.JSON(201, level)
}

func (h *AcademyHandler) ListLevels(c *drift.Context) {
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

	levels, err := h.academyService.ListLevels(context.Background(), academyID)
	if err != nil {
		c.InternalServerError("failed to list levels")
		return
	}

	_ = c.JSON(200, levels)
}

func (h *AcademyHandler) UpdateLevel(c *drift.Context) {
	levelID, err := uuid.Parse(c.Param("levelId"))
	if err != nil {
		c.BadRequest("invalid level id")
		return
	}

	var req dto.UpdateLevelRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	level, err := h.academyService.UpdateLevel(context.Background(), levelID, req.Name, req.TeacherEmail)
	if err != nil {
		c.NotFound("level not found")
		return
	}

	_ = c.JSON(200, level)
}

func (h *AcademyHandler) DeleteLevel(c *drift.Context) {
	levelID, err := uuid.Parse(c.Param("levelId"))
	if err != nil {
		c.BadRequest("invalid level id")
		return
	}

	if err := h.academyService.DeleteLevel(context.Background(), levelID); err != nil {
		c.InternalServerError("failed to delete level")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "level deleted"})
}
