package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "ems_backend/internals/features/enrollments/controller"
)

// EnrollmentUserRoutes mounts the student-facing enrollment surface.
func EnrollmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db)

	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctl.Enroll)
	enrollments.Post("/drop", ctl.Drop)
	enrollments.Get("/my-courses", ctl.MyCourses)
}
