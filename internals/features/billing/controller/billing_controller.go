package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "ems_backend/internals/features/billing/dto"
	service "ems_backend/internals/features/billing/service"
	helper "ems_backend/internals/helpers"
)

type BillingController struct {
	Service *service.BillingService
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{Service: service.NewBillingService(db)}
}

/* ===============================
   GET /api/public/plans
   =============================== */
func (ctl *BillingController) ListPlans(c *fiber.Ctx) error {
	plans, err := ctl.Service.ListPlans(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load plans")
	}
	return helper.JsonOK(c, "Subscription plans", plans)
}

/* ===============================
   POST /api/a/billing/checkout
   =============================== */
func (ctl *BillingController) Checkout(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	sub, token, err := ctl.Service.Checkout(c.UserContext(), companyID, req.PlanID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Checkout created, continue to payment", dto.CheckoutResponse{
		SubscriptionID: sub.SubscriptionID,
		OrderID:        sub.SubscriptionOrderID,
		SnapToken:      token,
	})
}

/* ===============================
   GET /api/a/billing/subscription
   =============================== */
func (ctl *BillingController) MySubscription(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sub, err := ctl.Service.MySubscription(c.UserContext(), companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No subscription yet")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subscription")
	}
	return helper.JsonOK(c, "Subscription", sub)
}

/* ===============================
   POST /api/public/webhooks/midtrans
   =============================== */
func (ctl *BillingController) MidtransWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Notification missing order_id or transaction_status")
	}

	if err := ctl.Service.ApplyWebhook(c.UserContext(), orderID, transactionStatus); err != nil {
		log.Printf("[WARN] midtrans webhook failed for order %s: %v", orderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process notification")
	}
	return helper.JsonOK(c, "Notification processed", fiber.Map{"order_id": orderID})
}
