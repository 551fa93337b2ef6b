package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	controller "ems_backend/internals/features/courses/controller"
	authmw "ems_backend/internals/middlewares/auth"
)

// CourseUserRoutes mounts the read surface. Every authenticated role may call
// these; the service narrows what each role actually sees.
func CourseUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	courses := r.Group("/courses")
	courses.Get("/", ctl.List)
	courses.Get("/:id", ctl.Details)
}

// CourseAdminRoutes mounts the write surface for managers and above.
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	guard := authmw.RequireRoles(
		constants.RoleErrorManager("manage courses"),
		constants.ManagerAndAbove...,
	)

	courses := r.Group("/courses", guard)
	courses.Post("/", ctl.Create)
	courses.Put("/:id", ctl.Update)
	courses.Delete("/:id", ctl.Delete)

	content := r.Group("/content", guard)
	content.Patch("/:type/:id/visibility", ctl.UpdateVisibility)
}
