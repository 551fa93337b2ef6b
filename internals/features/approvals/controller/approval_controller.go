package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ems_backend/internals/features/approvals/dto"
	service "ems_backend/internals/features/approvals/service"
	helper "ems_backend/internals/helpers"
)

type ApprovalController struct {
	Service *service.ApprovalService
}

func NewApprovalController(db *gorm.DB) *ApprovalController {
	return &ApprovalController{Service: service.NewApprovalService(db)}
}

/* ===============================
   POST /api/a/approvals/:type/:id/approve
   =============================== */
func (ctl *ApprovalController) Approve(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	if err := ctl.Service.ApproveItem(c.UserContext(), c.Params("type"), id, companyID, userID); err != nil {
		return ctl.translate(c, err)
	}
	return helper.JsonUpdated(c, "Item approved", fiber.Map{
		"entity_type": c.Params("type"),
		"id":          id,
	})
}

/* ===============================
   POST /api/a/approvals/:type/:id/reject
   =============================== */
func (ctl *ApprovalController) Reject(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	var req dto.RejectItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}

	// The empty-reason rule lives in the service so no caller can bypass it;
	// the DTO tag just surfaces it earlier.
	if err := ctl.Service.RejectItem(c.UserContext(), c.Params("type"), id, companyID, userID, req.Reason); err != nil {
		return ctl.translate(c, err)
	}
	return helper.JsonUpdated(c, "Item rejected", fiber.Map{
		"entity_type": c.Params("type"),
		"id":          id,
	})
}

/* ===============================
   GET /api/a/approvals/pending
   =============================== */
func (ctl *ApprovalController) Pending(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	items, err := ctl.Service.GetPendingItems(c.UserContext(), companyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pending items")
	}
	return helper.JsonOK(c, "Pending items", items)
}

func (ctl *ApprovalController) translate(c *fiber.Ctx, err error) error {
	var se *service.ServiceError
	if errors.As(err, &se) {
		return helper.JsonErrorCode(c, se.Status, se.Code, se.Message)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
