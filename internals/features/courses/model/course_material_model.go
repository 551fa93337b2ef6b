package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseMaterialModel can attach to a lesson, a module, or directly to a
// course. Exactly one parent is expected but not enforced at the schema
// level (legacy data has course-only attachments).
type CourseMaterialModel struct {
	CourseMaterialID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_material_id" json:"course_material_id"`

	CourseMaterialCompanyID      uuid.UUID  `gorm:"type:uuid;not null;index;column:course_material_company_id" json:"course_material_company_id"`
	CourseMaterialCourseID       *uuid.UUID `gorm:"type:uuid;index;column:course_material_course_id" json:"course_material_course_id,omitempty"`
	CourseMaterialCourseModuleID *uuid.UUID `gorm:"type:uuid;index;column:course_material_course_module_id" json:"course_material_course_module_id,omitempty"`
	CourseMaterialLessonID       *uuid.UUID `gorm:"type:uuid;index;column:course_material_lesson_id" json:"course_material_lesson_id,omitempty"`

	CourseMaterialTitle   string  `gorm:"not null;column:course_material_title" json:"course_material_title"`
	CourseMaterialFileURL *string `gorm:"column:course_material_file_url" json:"course_material_file_url,omitempty"`

	// STUDENTS | TUTORS | BOTH
	CourseMaterialTargetAudience string `gorm:"not null;default:'BOTH';column:course_material_target_audience" json:"course_material_target_audience"`

	CourseMaterialIsActive bool `gorm:"not null;default:true;column:course_material_is_active" json:"course_material_is_active"`

	CourseMaterialApprovalStatus  string     `gorm:"not null;default:'PENDING';index;column:course_material_approval_status" json:"course_material_approval_status"`
	CourseMaterialRejectionReason *string    `gorm:"column:course_material_rejection_reason" json:"course_material_rejection_reason,omitempty"`
	CourseMaterialApprovedAt      *time.Time `gorm:"column:course_material_approved_at" json:"course_material_approved_at,omitempty"`
	CourseMaterialApprovedBy      *uuid.UUID `gorm:"type:uuid;column:course_material_approved_by" json:"course_material_approved_by,omitempty"`

	CourseMaterialCreatedAt time.Time      `gorm:"column:course_material_created_at;autoCreateTime" json:"course_material_created_at"`
	CourseMaterialUpdatedAt *time.Time     `gorm:"column:course_material_updated_at;autoUpdateTime" json:"course_material_updated_at,omitempty"`
	CourseMaterialDeletedAt gorm.DeletedAt `gorm:"column:course_material_deleted_at;index" json:"course_material_deleted_at,omitempty"`
}

func (CourseMaterialModel) TableName() string { return "course_materials" }

func (m *CourseMaterialModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseMaterialID == uuid.Nil {
		m.CourseMaterialID = uuid.New()
	}
	return nil
}
