package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LiveClassModel struct {
	LiveClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:live_class_id" json:"live_class_id"`

	LiveClassCompanyID uuid.UUID  `gorm:"type:uuid;not null;index;column:live_class_company_id" json:"live_class_company_id"`
	LiveClassCourseID  uuid.UUID  `gorm:"type:uuid;not null;index;column:live_class_course_id" json:"live_class_course_id"`
	LiveClassBatchID   *uuid.UUID `gorm:"type:uuid;index;column:live_class_batch_id" json:"live_class_batch_id,omitempty"`

	LiveClassTitle       string     `gorm:"not null;column:live_class_title" json:"live_class_title"`
	LiveClassScheduledAt *time.Time `gorm:"column:live_class_scheduled_at" json:"live_class_scheduled_at,omitempty"`
	LiveClassMeetingURL  *string    `gorm:"column:live_class_meeting_url" json:"live_class_meeting_url,omitempty"`

	LiveClassIsActive bool `gorm:"not null;default:true;column:live_class_is_active" json:"live_class_is_active"`

	LiveClassApprovalStatus  string     `gorm:"not null;default:'PENDING';index;column:live_class_approval_status" json:"live_class_approval_status"`
	LiveClassRejectionReason *string    `gorm:"column:live_class_rejection_reason" json:"live_class_rejection_reason,omitempty"`
	LiveClassApprovedAt      *time.Time `gorm:"column:live_class_approved_at" json:"live_class_approved_at,omitempty"`
	LiveClassApprovedBy      *uuid.UUID `gorm:"type:uuid;column:live_class_approved_by" json:"live_class_approved_by,omitempty"`

	LiveClassCreatedAt time.Time      `gorm:"column:live_class_created_at;autoCreateTime" json:"live_class_created_at"`
	LiveClassUpdatedAt *time.Time     `gorm:"column:live_class_updated_at;autoUpdateTime" json:"live_class_updated_at,omitempty"`
	LiveClassDeletedAt gorm.DeletedAt `gorm:"column:live_class_deleted_at;index" json:"live_class_deleted_at,omitempty"`
}

func (LiveClassModel) TableName() string { return "live_classes" }

func (m *LiveClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.LiveClassID == uuid.Nil {
		m.LiveClassID = uuid.New()
	}
	return nil
}
