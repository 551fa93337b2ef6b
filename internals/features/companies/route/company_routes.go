package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	controller "ems_backend/internals/features/companies/controller"
	authmw "ems_backend/internals/middlewares/auth"
)

// CompanyAdminRoutes mounts the tenant self-read.
func CompanyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCompanyController(db)

	guard := authmw.RequireRoles(
		constants.RoleErrorManager("company settings"),
		constants.ManagerAndAbove...,
	)

	r.Get("/company", guard, ctl.Self)
}

// CompanyOwnerRoutes mounts the cross-tenant platform listing.
func CompanyOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCompanyController(db)

	guard := authmw.RequireRoles(
		constants.RoleErrorOwner("the platform console"),
		constants.OwnerOnly...,
	)

	r.Get("/companies", guard, ctl.List)
}
