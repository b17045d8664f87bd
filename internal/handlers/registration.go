package handlers

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/middleware"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/iyforlando/academy-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type RegistrationHandler struct {
	registrationService RegistrationServiceInterface
	studentService      StudentServiceInterface
	academyService      AcademyServiceInterface
	emailService        EmailServiceInterface
	hub                 HubInterface
}

func NewRegistrationHandler(
	registrationService RegistrationServiceInterface,
	studentService StudentServiceInterface,
	academyService AcademyServiceInterface,
	emailService EmailServiceInterface,
	hub HubInterface,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		studentService:      studentService,
		academyService:      academyService,
		emailService:        emailService,
		hub:                 hub,
	}
}

func (h *RegistrationHandler) CreateStudent(c *drift.Context) {
	var req dto.CreateStudentRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		c.BadRequest("first_name and last_name are required")
		return
	}

	var birthDate *time.Time
	if req.BirthDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			c.BadRequest("birth_date must be YYYY-MM-DD")
			return
		}
		birthDate = &parsed
	}

	student, err := h.studentService.Create(context.Background(), req.FirstName, req.LastName, req.Email, req.Phone, birthDate)
	if err != nil {
		c.InternalServerError("failed to create student")
		return
	}

	_ = c.JSON(201, student)
}

func (h *RegistrationHandler) ListStudents(c *drift.Context) {
	students, err := h.studentService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list students")
		return
	}

	_ = c.JSON(200, students)
}

func (h *RegistrationHandler) GetStudent(c *drift.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid student id")
		return
	}

	student, err := h.studentService.GetByID(context.Background(), studentID)
	if err != nil {
		c.NotFound("student not found")
		return
	}

	_ = c.JSON(200, student)
}

func (h *RegistrationHandler) UpdateStudent(c *drift.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid student id")
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		c.BadRequest("first_name and last_name are required")
		return
	}

	student, err := h.studentService.Update(context.Background(), studentID, req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		c.NotFound("student not found")
		return
	}

	_ = c.JSON(200, student)
}

func (h *RegistrationHandler) DeleteStudent(c *drift.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid student id")
		return
	}

	if err := h.studentService.Delete(context.Background(), studentID); err != nil {
		c.InternalServerError("failed to delete student")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "student deleted"})
}

func (h *RegistrationHandler) Create(c *drift.Context) {
	var req dto.CreateRegistrationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.StudentID == uuid.Nil || req.AcademyID == uuid.Nil {
		c.BadRequest("student_id and academy_id are required")
		return
	}
	if req.Season == "" {
		c.BadRequest("season is required")
		return
	}

	ctx := context.Background()

	registration, err := h.registrationService.Create(ctx, req.StudentID, req.AcademyID, req.LevelID, req.Season)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	h.hub.BroadcastRegistration(registration.AcademyID, registration.ID, registration.Status)
	h.sendConfirmation(ctx, registration.StudentID, registration.AcademyID, registration.Season)

	_ = c.JSON(201, registration)
}

func (h *RegistrationHandler) Get(c *drift.Context) {
	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid registration id")
		return
	}

	registration, err := h.registrationService.GetByID(context.Background(), registrationID)
	if err != nil {
		c.NotFound("registration not found")
		return
	}

	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !access.IsAdmin() && !access.Teacher.CanAccess(registration.AcademyID) {
		c.Forbidden("not assigned to this academy")
		return
	}

	_ = c.JSON(200, registration)
}

// ListByAcademy returns an academy's roster. Teachers only see rosters for
// academies in their scope.
func (h *RegistrationHandler) ListByAcademy(c *drift.Context) {
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

	season := c.QueryParam("season")

	registrations, err := h.registrationService.ListByAcademy(context.Background(), academyID, season)
	if err != nil {
		c.InternalServerError("failed to list registrations")
		return
	}

	_ = c.JSON(200, registrations)
}

func (h *RegistrationHandler) UpdateStatus(c *drift.Context) {
	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid registration id")
		return
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	switch req.Status {
	case models.RegistrationPending, models.RegistrationConfirmed, models.RegistrationWaitlisted, models.RegistrationCancelled:
	default:
		c.BadRequest("invalid status")
		return
	}

	registration, err := h.registrationService.UpdateStatus(context.Background(), registrationID, req.Status)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	h.hub.BroadcastRegistration(registration.AcademyID, registration.ID, registration.Status)

	_ = c.JSON(200, registration)
}

func (h *RegistrationHandler) Cancel(c *drift.Context) {
	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid registration id")
		return
	}

	registration, err := h.registrationService.Cancel(context.Background(), registrationID)
	if err != nil {
		c.NotFound("registration not found")
		return
	}

	h.hub.BroadcastRegistration(registration.AcademyID, registration.ID, registration.Status)

	_ = c.JSON(200, registration)
}

// sendConfirmation emails the student if they have an address on file.
// Failures are logged, never surfaced to the registrant.
func (h *RegistrationHandler) sendConfirmation(ctx context.Context, studentID, academyID uuid.UUID, season string) {
	student, err := h.studentService.GetByID(ctx, studentID)
	if err != nil || student.Email == nil {
		return
	}

	academy, err := h.academyService.GetByID(ctx, academyID)
	if err != nil {
		return
	}

	studentName := student.FirstName + " " + student.LastName
	if err := h.emailService.SendRegistrationConfirmation(*student.Email, studentName, academy.Name, season); err != nil {
		log.Printf("registration confirmation email failed for %s: %v", *student.Email, err)
	}
}
