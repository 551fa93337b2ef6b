package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ems_backend/internals/features/leads/dto"
	service "ems_backend/internals/features/leads/service"
	helper "ems_backend/internals/helpers"
)

type LeadController struct {
	Service *service.LeadService
}

func NewLeadController(db *gorm.DB) *LeadController {
	return &LeadController{Service: service.NewLeadService(db)}
}

/* ===============================
   POST /api/public/leads (rate limited)
   =============================== */
func (ctl *LeadController) Capture(c *fiber.Ctx) error {
	var req dto.CaptureLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	lead, err := ctl.Service.Capture(c.UserContext(), req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to capture lead")
	}
	// Public surface: only return the reference id, not the stored record.
	return helper.JsonCreated(c, "Thanks, we will be in touch", fiber.Map{"lead_id": lead.LeadID})
}

/* ===============================
   GET /api/a/leads?status=&page=&per_page=
   =============================== */
func (ctl *LeadController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))

	leads, total, err := ctl.Service.List(c.UserContext(), companyID, status, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load leads")
	}
	return helper.JsonList(c, "Leads", leads,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(leads)))
}

/* ===============================
   PATCH /api/a/leads/:id
   =============================== */
func (ctl *LeadController) Update(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lead id")
	}

	var req dto.UpdateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	lead, err := ctl.Service.Update(c.UserContext(), companyID, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lead not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lead")
	}
	return helper.JsonUpdated(c, "Lead updated", lead)
}
