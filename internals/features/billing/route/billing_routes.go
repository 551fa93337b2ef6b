package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	controller "ems_backend/internals/features/billing/controller"
	authmw "ems_backend/internals/middlewares/auth"
)

// BillingPublicRoutes mounts the plan catalogue and the Midtrans webhook.
// Midtrans calls the webhook server-to-server, so it sits outside auth.
func BillingPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)

	r.Get("/plans", ctl.ListPlans)
	r.Post("/webhooks/midtrans", ctl.MidtransWebhook)
}

// BillingAdminRoutes mounts checkout and subscription reads for admins.
func BillingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)

	guard := authmw.RequireRoles(
		constants.RoleErrorAdmin("billing"),
		constants.AdminAndAbove...,
	)

	billing := r.Group("/billing", guard)
	billing.Post("/checkout", ctl.Checkout)
	billing.Get("/subscription", ctl.MySubscription)
}
