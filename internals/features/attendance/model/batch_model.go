package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BatchModel is a cohort of students taking a course together.
type BatchModel struct {
	BatchID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:batch_id" json:"batch_id"`

	BatchCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:batch_company_id" json:"batch_company_id"`
	BatchCourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:batch_course_id" json:"batch_course_id"`

	BatchName      string     `gorm:"not null;column:batch_name" json:"batch_name"`
	BatchStartDate *time.Time `gorm:"type:date;column:batch_start_date" json:"batch_start_date,omitempty"`
	BatchEndDate   *time.Time `gorm:"type:date;column:batch_end_date" json:"batch_end_date,omitempty"`

	BatchIsActive bool `gorm:"not null;default:true;column:batch_is_active" json:"batch_is_active"`

	BatchApprovalStatus  string     `gorm:"not null;default:'PENDING';index;column:batch_approval_status" json:"batch_approval_status"`
	BatchRejectionReason *string    `gorm:"column:batch_rejection_reason" json:"batch_rejection_reason,omitempty"`
	BatchApprovedAt      *time.Time `gorm:"column:batch_approved_at" json:"batch_approved_at,omitempty"`
	BatchApprovedBy      *uuid.UUID `gorm:"type:uuid;column:batch_approved_by" json:"batch_approved_by,omitempty"`

	BatchCreatedAt time.Time      `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt *time.Time     `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at,omitempty"`
	BatchDeletedAt gorm.DeletedAt `gorm:"column:batch_deleted_at;index" json:"batch_deleted_at,omitempty"`
}

func (BatchModel) TableName() string { return "batches" }

func (m *BatchModel) BeforeCreate(tx *gorm.DB) error {
	if m.BatchID == uuid.Nil {
		m.BatchID = uuid.New()
	}
	return nil
}
