// Package testdb opens a throwaway in-memory database for service tests.
// The schema is declared here by hand: the production column defaults
// (gen_random_uuid) are Postgres expressions sqlite will not accept, and
// every model sets its id in BeforeCreate anyway.
package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE companies (
		company_id TEXT PRIMARY KEY,
		company_name TEXT NOT NULL,
		company_slug TEXT,
		company_email TEXT,
		company_is_active BOOLEAN NOT NULL DEFAULT true,
		company_created_at DATETIME,
		company_updated_at DATETIME,
		company_deleted_at DATETIME
	)`,
	`CREATE TABLE branches (
		branch_id TEXT PRIMARY KEY,
		branch_company_id TEXT NOT NULL,
		branch_name TEXT NOT NULL,
		branch_address TEXT,
		branch_is_active BOOLEAN NOT NULL DEFAULT true,
		branch_created_at DATETIME,
		branch_updated_at DATETIME,
		branch_deleted_at DATETIME
	)`,
	`CREATE TABLE users (
		user_id TEXT PRIMARY KEY,
		user_email TEXT NOT NULL UNIQUE,
		user_password TEXT NOT NULL,
		user_first_name TEXT NOT NULL,
		user_last_name TEXT,
		user_is_active BOOLEAN NOT NULL DEFAULT true,
		user_created_at DATETIME,
		user_updated_at DATETIME,
		user_deleted_at DATETIME
	)`,
	`CREATE TABLE roles (
		role_id TEXT PRIMARY KEY,
		role_name TEXT NOT NULL UNIQUE,
		role_created_at DATETIME
	)`,
	`CREATE TABLE user_roles (
		user_role_id TEXT PRIMARY KEY,
		user_role_user_id TEXT NOT NULL,
		user_role_role_id TEXT NOT NULL,
		user_role_company_id TEXT NOT NULL,
		user_role_branch_id TEXT,
		user_role_assigned_at DATETIME,
		UNIQUE (user_role_user_id, user_role_role_id, user_role_company_id, user_role_branch_id)
	)`,
	`CREATE TABLE employees (
		employee_id TEXT PRIMARY KEY,
		employee_company_id TEXT NOT NULL,
		employee_branch_id TEXT,
		employee_user_id TEXT,
		employee_first_name TEXT NOT NULL,
		employee_last_name TEXT,
		employee_email TEXT NOT NULL,
		employee_phone TEXT,
		employee_designation_title TEXT,
		employee_is_active BOOLEAN NOT NULL DEFAULT true,
		employee_created_at DATETIME,
		employee_updated_at DATETIME,
		employee_deleted_at DATETIME
	)`,
	`CREATE TABLE courses (
		course_id TEXT PRIMARY KEY,
		course_company_id TEXT NOT NULL,
		course_title TEXT NOT NULL,
		course_description TEXT,
		course_thumbnail_url TEXT,
		course_tutor_id TEXT,
		course_is_active BOOLEAN NOT NULL DEFAULT true,
		course_approval_status TEXT NOT NULL DEFAULT 'PENDING',
		course_rejection_reason TEXT,
		course_approved_at DATETIME,
		course_approved_by TEXT,
		course_deleted_by TEXT,
		course_delete_reason TEXT,
		course_created_at DATETIME,
		course_updated_at DATETIME,
		course_deleted_at DATETIME
	)`,
	`CREATE TABLE course_tutors (
		course_tutor_id TEXT PRIMARY KEY,
		course_tutor_course_id TEXT NOT NULL,
		course_tutor_employee_id TEXT NOT NULL,
		course_tutor_company_id TEXT NOT NULL,
		course_tutor_created_at DATETIME,
		UNIQUE (course_tutor_course_id, course_tutor_employee_id)
	)`,
	`CREATE TABLE course_modules (
		course_module_id TEXT PRIMARY KEY,
		course_module_course_id TEXT NOT NULL,
		course_module_company_id TEXT NOT NULL,
		course_module_title TEXT NOT NULL,
		course_module_description TEXT,
		course_module_order INTEGER NOT NULL DEFAULT 0,
		course_module_is_active BOOLEAN NOT NULL DEFAULT true,
		course_module_created_at DATETIME,
		course_module_updated_at DATETIME,
		course_module_deleted_at DATETIME
	)`,
	`CREATE TABLE lessons (
		lesson_id TEXT PRIMARY KEY,
		lesson_course_module_id TEXT NOT NULL,
		lesson_course_id TEXT NOT NULL,
		lesson_company_id TEXT NOT NULL,
		lesson_title TEXT NOT NULL,
		lesson_order INTEGER NOT NULL DEFAULT 0,
		lesson_is_preview BOOLEAN NOT NULL DEFAULT false,
		lesson_video_url TEXT,
		lesson_content_body TEXT,
		lesson_is_active BOOLEAN NOT NULL DEFAULT true,
		lesson_approval_status TEXT NOT NULL DEFAULT 'PENDING',
		lesson_rejection_reason TEXT,
		lesson_approved_at DATETIME,
		lesson_approved_by TEXT,
		lesson_created_at DATETIME,
		lesson_updated_at DATETIME,
		lesson_deleted_at DATETIME
	)`,
	`CREATE TABLE course_materials (
		course_material_id TEXT PRIMARY KEY,
		course_material_company_id TEXT NOT NULL,
		course_material_course_id TEXT,
		course_material_course_module_id TEXT,
		course_material_lesson_id TEXT,
		course_material_title TEXT NOT NULL,
		course_material_file_url TEXT,
		course_material_target_audience TEXT NOT NULL DEFAULT 'BOTH',
		course_material_is_active BOOLEAN NOT NULL DEFAULT true,
		course_material_approval_status TEXT NOT NULL DEFAULT 'PENDING',
		course_material_rejection_reason TEXT,
		course_material_approved_at DATETIME,
		course_material_approved_by TEXT,
		course_material_created_at DATETIME,
		course_material_updated_at DATETIME,
		course_material_deleted_at DATETIME
	)`,
	`CREATE TABLE assignments (
		assignment_id TEXT PRIMARY KEY,
		assignment_company_id TEXT NOT NULL,
		assignment_course_id TEXT NOT NULL,
		assignment_title TEXT NOT NULL,
		assignment_instructions TEXT,
		assignment_due_at DATETIME,
		assignment_is_active BOOLEAN NOT NULL DEFAULT true,
		assignment_approval_status TEXT NOT NULL DEFAULT 'PENDING',
		assignment_rejection_reason TEXT,
		assignment_approved_at DATETIME,
		assignment_approved_by TEXT,
		assignment_created_at DATETIME,
		assignment_updated_at DATETIME,
		assignment_deleted_at DATETIME
	)`,
	`CREATE TABLE quizzes (
		quiz_id TEXT PRIMARY KEY,
		quiz_company_id TEXT NOT NULL,
		quiz_course_id TEXT NOT NULL,
		quiz_title TEXT NOT NULL,
		quiz_questions TEXT,
		quiz_duration_minutes INTEGER,
		quiz_is_active BOOLEAN NOT NULL DEFAULT true,
		quiz_approval_status TEXT NOT NULL DEFAULT 'PENDING',
		quiz_rejection_reason TEXT,
		quiz_approved_at DATETIME,
		quiz_approved_by TEXT,
		quiz_created_at DATETIME,
		quiz_updated_at DATETIME,
		quiz_deleted_at DATETIME
	)`,
	`CREATE TABLE batches (
		batch_id TEXT PRIMARY KEY,
		batch_company_id TEXT NOT NULL,
		batch_course_id TEXT NOT NULL,
		batch_name TEXT NOT NULL,
		batch_start_date DATETIME,
		batch_end_date DATETIME,
		batch_is_active BOOLEAN NOT NULL DEFAULT true,
		batch_approval_status TEXT NOT NULL DEFAULT 'PENDING',
		batch_rejection_reason TEXT,
		batch_approved_at DATETIME,
		batch_approved_by TEXT,
		batch_created_at DATETIME,
		batch_updated_at DATETIME,
		batch_deleted_at DATETIME
	)`,
	`CREATE TABLE live_classes (
		live_class_id TEXT PRIMARY KEY,
		live_class_company_id TEXT NOT NULL,
		live_class_course_id TEXT NOT NULL,
		live_class_batch_id TEXT,
		live_class_title TEXT NOT NULL,
		live_class_scheduled_at DATETIME,
		live_class_meeting_url TEXT,
		live_class_is_active BOOLEAN NOT NULL DEFAULT true,
		live_class_approval_status TEXT NOT NULL DEFAULT 'PENDING',
		live_class_rejection_reason TEXT,
		live_class_approved_at DATETIME,
		live_class_approved_by TEXT,
		live_class_created_at DATETIME,
		live_class_updated_at DATETIME,
		live_class_deleted_at DATETIME
	)`,
	`CREATE TABLE attendance_sessions (
		attendance_session_id TEXT PRIMARY KEY,
		attendance_session_company_id TEXT NOT NULL,
		attendance_session_batch_id TEXT NOT NULL,
		attendance_session_course_id TEXT NOT NULL,
		attendance_session_title TEXT,
		attendance_session_date DATETIME,
		attendance_session_status TEXT NOT NULL DEFAULT 'SCHEDULED',
		attendance_session_is_active BOOLEAN NOT NULL DEFAULT true,
		attendance_session_approval_status TEXT NOT NULL DEFAULT 'PENDING',
		attendance_session_rejection_reason TEXT,
		attendance_session_approved_at DATETIME,
		attendance_session_approved_by TEXT,
		attendance_session_created_at DATETIME,
		attendance_session_updated_at DATETIME,
		attendance_session_deleted_at DATETIME
	)`,
	`CREATE TABLE enrollments (
		enrollment_id TEXT PRIMARY KEY,
		enrollment_company_id TEXT NOT NULL,
		enrollment_course_id TEXT NOT NULL,
		enrollment_student_user_id TEXT NOT NULL,
		enrollment_status TEXT NOT NULL DEFAULT 'ACTIVE',
		enrollment_is_active BOOLEAN NOT NULL DEFAULT true,
		enrollment_created_at DATETIME,
		enrollment_updated_at DATETIME,
		enrollment_deleted_at DATETIME,
		UNIQUE (enrollment_course_id, enrollment_student_user_id)
	)`,
	`CREATE TABLE subscription_plans (
		plan_id TEXT PRIMARY KEY,
		plan_code TEXT NOT NULL UNIQUE,
		plan_name TEXT NOT NULL,
		plan_price_monthly INTEGER NOT NULL,
		plan_max_students INTEGER,
		plan_max_tutors INTEGER,
		plan_is_active BOOLEAN NOT NULL DEFAULT true,
		plan_created_at DATETIME
	)`,
	`CREATE TABLE subscriptions (
		subscription_id TEXT PRIMARY KEY,
		subscription_company_id TEXT NOT NULL,
		subscription_plan_id TEXT NOT NULL,
		subscription_order_id TEXT NOT NULL UNIQUE,
		subscription_status TEXT NOT NULL DEFAULT 'PENDING_PAYMENT',
		subscription_current_period_end DATETIME,
		subscription_created_at DATETIME,
		subscription_updated_at DATETIME,
		subscription_deleted_at DATETIME
	)`,
}

// Open returns a fresh in-memory database with the full schema applied.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("apply schema: %v", err)
		}
	}
	return db
}
