package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	approvalController "ems_backend/internals/features/approvals/controller"
	authmw "ems_backend/internals/middlewares/auth"
)

/*
Admin routes: moderation queue + decisions
Mount example: ApprovalAdminRoutes(app.Group("/api/a"), db)
*/
func ApprovalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := approvalController.NewApprovalController(db)
	approvals := r.Group("/approvals",
		authmw.RequireRoles(constants.RoleErrorManager("content moderation"), constants.ManagerAndAbove...),
	)
	approvals.Get("/pending", ctl.Pending)            // GET  /api/a/approvals/pending
	approvals.Post("/:type/:id/approve", ctl.Approve) // POST /api/a/approvals/course/:id/approve
	approvals.Post("/:type/:id/reject", ctl.Reject)   // POST /api/a/approvals/lesson/:id/reject
}
