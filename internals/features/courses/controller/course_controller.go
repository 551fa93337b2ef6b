package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	dto "ems_backend/internals/features/courses/dto"
	service "ems_backend/internals/features/courses/service"
	userModel "ems_backend/internals/features/users/model"
	helper "ems_backend/internals/helpers"
)

type CourseController struct {
	DB      *gorm.DB
	Service *service.CourseService
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Service: service.NewCourseService(db)}
}

// resolveProfile builds the explicit role context every service call takes.
// Tutor sessions additionally need their employee id for assignment checks.
func (ctl *CourseController) resolveProfile(c *fiber.Ctx) (service.Profile, uuid.UUID, error) {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return service.Profile{}, uuid.Nil, err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return service.Profile{}, uuid.Nil, err
	}

	p := service.Profile{
		UserID: userID,
		Role:   helper.GetUserRoleFromToken(c),
	}

	if p.Role == constants.RoleTutor {
		var emp userModel.EmployeeModel
		if err := ctl.DB.WithContext(c.UserContext()).
			Where("employee_user_id = ? AND employee_company_id = ?", userID, companyID).
			First(&emp).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.Profile{}, uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No staff record for this tutor session")
			}
			return service.Profile{}, uuid.Nil, err
		}
		p.EmployeeID = emp.EmployeeID
	}

	return p, companyID, nil
}

/* ===============================
   GET /api/u/courses
   =============================== */
func (ctl *CourseController) List(c *fiber.Ctx) error {
	p, companyID, err := ctl.resolveProfile(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courses, err := ctl.Service.GetAllCourses(c.UserContext(), companyID, p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load courses")
	}
	return helper.JsonOK(c, "Courses", courses)
}

/* ===============================
   GET /api/u/courses/:id
   =============================== */
func (ctl *CourseController) Details(c *fiber.Ctx) error {
	p, companyID, err := ctl.resolveProfile(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	detail, err := ctl.Service.GetCourseDetails(c.UserContext(), id, companyID, p)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTutorNotAssigned):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}
	return helper.JsonOK(c, "Course details", detail)
}

/* ===============================
   POST /api/a/courses
   =============================== */
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	course, warning, err := ctl.Service.CreateCourse(c.UserContext(), req, companyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	body := fiber.Map{"course": course}
	if warning != "" {
		body["warning"] = warning
	}
	return helper.JsonCreated(c, "Course created (pending approval)", body)
}

/* ===============================
   PUT /api/a/courses/:id
   =============================== */
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	course, warning, err := ctl.Service.UpdateCourse(c.UserContext(), id, companyID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	body := fiber.Map{"course": course}
	if warning != "" {
		body["warning"] = warning
	}
	return helper.JsonUpdated(c, "Course updated", body)
}

/* ===============================
   PATCH /api/a/content/:type/:id/visibility
   =============================== */
func (ctl *CourseController) UpdateVisibility(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	var req dto.UpdateVisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	resp, err := ctl.Service.UpdateContentVisibility(c.UserContext(), c.Params("type"), id, req.Visibility, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Visibility updated", resp)
}

/* ===============================
   DELETE /api/a/courses/:id
   =============================== */
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.DeleteCourseRequest
	_ = c.BodyParser(&req) // reason is optional, body may be empty

	if err := ctl.Service.SoftDeleteCourse(c.UserContext(), id, companyID, userID, req.Reason); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found or already deleted")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": id})
}
