package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "ems_backend/internals/features/enrollments/dto"
	service "ems_backend/internals/features/enrollments/service"
	helper "ems_backend/internals/helpers"
)

type EnrollmentController struct {
	Service *service.EnrollmentService
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{Service: service.NewEnrollmentService(db)}
}

/* ===============================
   POST /api/u/enrollments
   =============================== */
func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	enr, err := ctl.Service.Enroll(c.UserContext(), companyID, req.CourseID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Enrolled", enr)
}

/* ===============================
   POST /api/u/enrollments/drop
   =============================== */
func (ctl *EnrollmentController) Drop(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.DropRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if err := ctl.Service.Drop(c.UserContext(), companyID, req.CourseID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to drop enrollment")
	}
	return helper.JsonUpdated(c, "Enrollment dropped", fiber.Map{"course_id": req.CourseID})
}

/* ===============================
   GET /api/u/enrollments/my-courses
   =============================== */
func (ctl *EnrollmentController) MyCourses(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courses, err := ctl.Service.MyCourses(c.UserContext(), companyID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load enrolled courses")
	}
	return helper.JsonOK(c, "My courses", courses)
}
