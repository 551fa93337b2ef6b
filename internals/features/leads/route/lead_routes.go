package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	controller "ems_backend/internals/features/leads/controller"
	authmw "ems_backend/internals/middlewares/auth"
	"ems_backend/internals/middlewares"
)

// LeadPublicRoutes mounts the unauthenticated capture form.
func LeadPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeadController(db)

	r.Post("/leads", middlewares.LeadCaptureRateLimiter(), ctl.Capture)
}

// LeadAdminRoutes mounts the CRM pipeline for managers and above.
func LeadAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeadController(db)

	guard := authmw.RequireRoles(
		constants.RoleErrorManager("the CRM pipeline"),
		constants.ManagerAndAbove...,
	)

	leads := r.Group("/leads", guard)
	leads.Get("/", ctl.List)
	leads.Patch("/:id", ctl.Update)
}
