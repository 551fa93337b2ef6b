package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	controller "ems_backend/internals/features/attendance/controller"
	authmw "ems_backend/internals/middlewares/auth"
)

// AttendanceAdminRoutes mounts batch/session/live-class management.
// Tutors run their own sessions, so the guard admits staff, not just managers.
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	guard := authmw.RequireRoles(
		constants.RoleErrorTutor("attendance management"),
		constants.StaffRoles...,
	)

	batches := r.Group("/batches", guard)
	batches.Post("/", ctl.CreateBatch)

	sessions := r.Group("/attendance-sessions", guard)
	sessions.Get("/", ctl.ListSessions)
	sessions.Post("/", ctl.CreateSession)
	sessions.Post("/:id/advance", ctl.AdvanceSession)

	liveClasses := r.Group("/live-classes", guard)
	liveClasses.Post("/", ctl.CreateLiveClass)
}
