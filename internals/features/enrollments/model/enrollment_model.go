package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel links a student (user id) to a course. Only rows with
// status ACTIVE and is_active=true unlock ENROLLED-visibility content.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`

	EnrollmentCompanyID     uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_company_id" json:"enrollment_company_id"`
	EnrollmentCourseID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments,priority:1;column:enrollment_course_id" json:"enrollment_course_id"`
	EnrollmentStudentUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments,priority:2;column:enrollment_student_user_id" json:"enrollment_student_user_id"`

	// ACTIVE | DROPPED
	EnrollmentStatus   string `gorm:"not null;default:'ACTIVE';column:enrollment_status" json:"enrollment_status"`
	EnrollmentIsActive bool   `gorm:"not null;default:true;column:enrollment_is_active" json:"enrollment_is_active"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt *time.Time     `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at,omitempty"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}
