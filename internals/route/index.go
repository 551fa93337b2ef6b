package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ems_backend/internals/configs"
	"ems_backend/internals/constants"
	approvalRoute "ems_backend/internals/features/approvals/route"
	attendanceRoute "ems_backend/internals/features/attendance/route"
	billingRoute "ems_backend/internals/features/billing/route"
	billingService "ems_backend/internals/features/billing/service"
	companyRoute "ems_backend/internals/features/companies/route"
	courseRoute "ems_backend/internals/features/courses/route"
	enrollmentRoute "ems_backend/internals/features/enrollments/route"
	leadRoute "ems_backend/internals/features/leads/route"
	tutorRoute "ems_backend/internals/features/tutors/route"
	userRoute "ems_backend/internals/features/users/route"
	authmw "ems_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	// Midtrans Snap client (checkout + webhook)
	billingService.InitMidtrans(configs.MidtransServerKey)

	authJWT := authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===================== GROUPS =====================

	// PUBLIC → no auth
	public := app.Group("/api/public")

	// PRIVATE (any authenticated user)
	private := app.Group("/api/u", authJWT)

	// ADMIN (staff surface; per-feature role guards narrow further)
	admin := app.Group("/api/a", authJWT,
		authmw.RequireRoles("Staff access required", constants.StaffRoles...),
	)

	// OWNER (platform console, cross-tenant)
	owner := app.Group("/api/o", authJWT,
		authmw.RequireRoles(constants.RoleErrorOwner("the platform console"), constants.OwnerOnly...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting auth routes...")
	userRoute.AuthPublicRoutes(public, db)
	userRoute.AuthUserRoutes(private, db)

	log.Println("[INFO] Mounting course routes...")
	courseRoute.CourseUserRoutes(private, db)
	courseRoute.CourseAdminRoutes(admin, db)

	log.Println("[INFO] Mounting tutor routes...")
	tutorRoute.TutorAdminRoutes(admin, db)

	log.Println("[INFO] Mounting enrollment routes...")
	enrollmentRoute.EnrollmentUserRoutes(private, db)

	log.Println("[INFO] Mounting approval routes...")
	approvalRoute.ApprovalAdminRoutes(admin, db)

	log.Println("[INFO] Mounting attendance routes...")
	attendanceRoute.AttendanceAdminRoutes(admin, db)

	log.Println("[INFO] Mounting lead routes...")
	leadRoute.LeadPublicRoutes(public, db)
	leadRoute.LeadAdminRoutes(admin, db)

	log.Println("[INFO] Mounting billing routes...")
	billingRoute.BillingPublicRoutes(public, db)
	billingRoute.BillingAdminRoutes(admin, db)

	log.Println("[INFO] Mounting company routes...")
	companyRoute.CompanyAdminRoutes(admin, db)
	companyRoute.CompanyOwnerRoutes(owner, db)
}
