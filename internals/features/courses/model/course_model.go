package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	CourseCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:course_company_id" json:"course_company_id"`

	CourseTitle       string  `gorm:"not null;column:course_title" json:"course_title"`
	CourseDescription *string `gorm:"column:course_description" json:"course_description,omitempty"`
	CourseThumbnailURL *string `gorm:"column:course_thumbnail_url" json:"course_thumbnail_url,omitempty"`

	// Legacy single-tutor column (employee id). Coexists with the
	// course_tutors junction; the assignment set is the union of both.
	CourseTutorID *uuid.UUID `gorm:"type:uuid;index;column:course_tutor_id" json:"course_tutor_id,omitempty"`

	CourseIsActive bool `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	CourseApprovalStatus  string     `gorm:"not null;default:'PENDING';index;column:course_approval_status" json:"course_approval_status"`
	CourseRejectionReason *string    `gorm:"column:course_rejection_reason" json:"course_rejection_reason,omitempty"`
	CourseApprovedAt      *time.Time `gorm:"column:course_approved_at" json:"course_approved_at,omitempty"`
	CourseApprovedBy      *uuid.UUID `gorm:"type:uuid;column:course_approved_by" json:"course_approved_by,omitempty"`

	CourseDeletedBy    *uuid.UUID `gorm:"type:uuid;column:course_deleted_by" json:"course_deleted_by,omitempty"`
	CourseDeleteReason *string    `gorm:"column:course_delete_reason" json:"course_delete_reason,omitempty"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}

// CourseTutorModel is the many-to-many course↔tutor junction (employee ids).
type CourseTutorModel struct {
	CourseTutorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_tutor_id" json:"course_tutor_id"`

	CourseTutorCourseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_course_tutors,priority:1;column:course_tutor_course_id" json:"course_tutor_course_id"`
	CourseTutorEmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_course_tutors,priority:2;column:course_tutor_employee_id" json:"course_tutor_employee_id"`
	CourseTutorCompanyID  uuid.UUID `gorm:"type:uuid;not null;index;column:course_tutor_company_id" json:"course_tutor_company_id"`

	CourseTutorCreatedAt time.Time `gorm:"column:course_tutor_created_at;autoCreateTime" json:"course_tutor_created_at"`
}

func (CourseTutorModel) TableName() string { return "course_tutors" }

func (m *CourseTutorModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseTutorID == uuid.Nil {
		m.CourseTutorID = uuid.New()
	}
	return nil
}
