package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ems_backend/internals/features/tutors/dto"
	service "ems_backend/internals/features/tutors/service"
	helper "ems_backend/internals/helpers"
)

type TutorController struct {
	Service *service.TutorService
}

func NewTutorController(db *gorm.DB) *TutorController {
	return &TutorController{Service: service.NewTutorService(db)}
}

/* ===============================
   GET /api/a/tutors?course_id=
   =============================== */
func (ctl *TutorController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var courseID *uuid.UUID
	if raw := c.Query("course_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_id")
		}
		courseID = &id
	}

	tutors, err := ctl.Service.GetAllTutors(c.UserContext(), companyID, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tutors")
	}
	return helper.JsonOK(c, "Tutors", tutors)
}

/* ===============================
   POST /api/a/tutors
   =============================== */
func (ctl *TutorController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	emp, err := ctl.Service.CreateTutor(c.UserContext(), companyID, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create tutor")
	}
	return helper.JsonCreated(c, "Tutor created", emp)
}

/* ===============================
   POST /api/a/tutors/assign-role
   =============================== */
func (ctl *TutorController) AssignRole(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AssignTutorRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if err := ctl.Service.AssignTutorRole(c.UserContext(), companyID, req.EmployeeID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		case errors.Is(err, service.ErrNoLinkedUser):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign tutor role")
	}
	return helper.JsonUpdated(c, "Tutor role assigned", fiber.Map{"employee_id": req.EmployeeID})
}

/* ===============================
   GET /api/a/tutors/potential
   =============================== */
func (ctl *TutorController) Potential(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	employees, err := ctl.Service.GetPotentialTutors(c.UserContext(), companyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load employees")
	}
	return helper.JsonOK(c, "Potential tutors", employees)
}
