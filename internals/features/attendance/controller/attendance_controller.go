package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ems_backend/internals/features/attendance/dto"
	service "ems_backend/internals/features/attendance/service"
	helper "ems_backend/internals/helpers"
)

type AttendanceController struct {
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{Service: service.NewAttendanceService(db)}
}

/* ===============================
   POST /api/a/batches
   =============================== */
func (ctl *AttendanceController) CreateBatch(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	batch, err := ctl.Service.CreateBatch(c.UserContext(), companyID, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create batch")
	}
	return helper.JsonCreated(c, "Batch created (pending approval)", batch)
}

/* ===============================
   POST /api/a/attendance-sessions
   =============================== */
func (ctl *AttendanceController) CreateSession(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	session, err := ctl.Service.CreateSession(c.UserContext(), companyID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	return helper.JsonCreated(c, "Session created (pending approval)", session)
}

/* ===============================
   POST /api/a/live-classes
   =============================== */
func (ctl *AttendanceController) CreateLiveClass(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateLiveClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	lc, err := ctl.Service.CreateLiveClass(c.UserContext(), companyID, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create live class")
	}
	return helper.JsonCreated(c, "Live class created (pending approval)", lc)
}

/* ===============================
   POST /api/a/attendance-sessions/:id/advance
   =============================== */
func (ctl *AttendanceController) AdvanceSession(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	session, err := ctl.Service.AdvanceSession(c.UserContext(), companyID, id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		case errors.Is(err, service.ErrSessionCompleted):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to advance session")
	}
	return helper.JsonUpdated(c, "Session advanced", session)
}

/* ===============================
   GET /api/a/attendance-sessions?batch_id=
   =============================== */
func (ctl *AttendanceController) ListSessions(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var batchID *uuid.UUID
	if raw := c.Query("batch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch_id")
		}
		batchID = &id
	}

	sessions, err := ctl.Service.ListSessions(c.UserContext(), companyID, batchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sessions")
	}
	return helper.JsonOK(c, "Attendance sessions", sessions)
}
