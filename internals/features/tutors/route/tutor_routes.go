package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	controller "ems_backend/internals/features/tutors/controller"
	authmw "ems_backend/internals/middlewares/auth"
)

// TutorAdminRoutes mounts the staff management surface for managers and above.
func TutorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTutorController(db)

	guard := authmw.RequireRoles(
		constants.RoleErrorManager("tutor management"),
		constants.ManagerAndAbove...,
	)

	tutors := r.Group("/tutors", guard)
	tutors.Get("/", ctl.List)
	tutors.Get("/potential", ctl.Potential)
	tutors.Post("/", ctl.Create)
	tutors.Post("/assign-role", ctl.AssignRole)
}
