package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonModel struct {
	LessonID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lesson_id" json:"lesson_id"`

	LessonCourseModuleID uuid.UUID `gorm:"type:uuid;not null;index;column:lesson_course_module_id" json:"lesson_course_module_id"`
	// Denormalized so moderation lists can join the parent course in one hop.
	LessonCourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:lesson_course_id" json:"lesson_course_id"`
	LessonCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:lesson_company_id" json:"lesson_company_id"`

	LessonTitle string `gorm:"not null;column:lesson_title" json:"lesson_title"`
	LessonOrder int    `gorm:"not null;default:0;column:lesson_order" json:"lesson_order"`

	// Preview lessons are shown publicly once approved.
	LessonIsPreview bool `gorm:"not null;default:false;column:lesson_is_preview" json:"lesson_is_preview"`

	LessonVideoURL    *string `gorm:"column:lesson_video_url" json:"lesson_video_url,omitempty"`
	LessonContentBody *string `gorm:"column:lesson_content_body" json:"lesson_content_body,omitempty"`

	LessonIsActive bool `gorm:"not null;default:true;column:lesson_is_active" json:"lesson_is_active"`

	LessonApprovalStatus  string     `gorm:"not null;default:'PENDING';index;column:lesson_approval_status" json:"lesson_approval_status"`
	LessonRejectionReason *string    `gorm:"column:lesson_rejection_reason" json:"lesson_rejection_reason,omitempty"`
	LessonApprovedAt      *time.Time `gorm:"column:lesson_approved_at" json:"lesson_approved_at,omitempty"`
	LessonApprovedBy      *uuid.UUID `gorm:"type:uuid;column:lesson_approved_by" json:"lesson_approved_by,omitempty"`

	LessonCreatedAt time.Time      `gorm:"column:lesson_created_at;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt *time.Time     `gorm:"column:lesson_updated_at;autoUpdateTime" json:"lesson_updated_at,omitempty"`
	LessonDeletedAt gorm.DeletedAt `gorm:"column:lesson_deleted_at;index" json:"lesson_deleted_at,omitempty"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	return nil
}
