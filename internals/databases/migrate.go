package database

import (
	"gorm.io/gorm"

	attendanceModel "ems_backend/internals/features/attendance/model"
	billingModel "ems_backend/internals/features/billing/model"
	companyModel "ems_backend/internals/features/companies/model"
	courseModel "ems_backend/internals/features/courses/model"
	enrollmentModel "ems_backend/internals/features/enrollments/model"
	leadModel "ems_backend/internals/features/leads/model"
	userModel "ems_backend/internals/features/users/model"
)

// AutoMigrate registers every model. Parents come before children so the
// references exist when the child tables are created.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&companyModel.CompanyModel{},
		&companyModel.BranchModel{},

		&userModel.UserModel{},
		&userModel.RoleModel{},
		&userModel.UserRoleModel{},
		&userModel.EmployeeModel{},

		&courseModel.CourseModel{},
		&courseModel.CourseTutorModel{},
		&courseModel.CourseModuleModel{},
		&courseModel.LessonModel{},
		&courseModel.CourseMaterialModel{},
		&courseModel.AssignmentModel{},
		&courseModel.QuizModel{},

		&attendanceModel.BatchModel{},
		&attendanceModel.LiveClassModel{},
		&attendanceModel.AttendanceSessionModel{},

		&enrollmentModel.EnrollmentModel{},
		&leadModel.LeadModel{},

		&billingModel.SubscriptionPlanModel{},
		&billingModel.SubscriptionModel{},
	)
}
