package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceSessionModel holds one tracked class sitting. Its status walks
// the fixed chain SCHEDULED → IDENTIFYING_ENTRY → IN_PROGRESS →
// IDENTIFYING_EXIT → COMPLETED, one step per advance call.
type AttendanceSessionModel struct {
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_session_id" json:"attendance_session_id"`

	AttendanceSessionCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_session_company_id" json:"attendance_session_company_id"`
	AttendanceSessionBatchID   uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_session_batch_id" json:"attendance_session_batch_id"`
	// Denormalized from the batch for one-hop course joins.
	AttendanceSessionCourseID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_session_course_id" json:"attendance_session_course_id"`

	AttendanceSessionTitle *string   `gorm:"column:attendance_session_title" json:"attendance_session_title,omitempty"`
	AttendanceSessionDate  time.Time `gorm:"type:date;not null;column:attendance_session_date" json:"attendance_session_date"`

	AttendanceSessionStatus string `gorm:"not null;default:'SCHEDULED';column:attendance_session_status" json:"attendance_session_status"`

	AttendanceSessionIsActive bool `gorm:"not null;default:true;column:attendance_session_is_active" json:"attendance_session_is_active"`

	AttendanceSessionApprovalStatus  string     `gorm:"not null;default:'PENDING';index;column:attendance_session_approval_status" json:"attendance_session_approval_status"`
	AttendanceSessionRejectionReason *string    `gorm:"column:attendance_session_rejection_reason" json:"attendance_session_rejection_reason,omitempty"`
	AttendanceSessionApprovedAt      *time.Time `gorm:"column:attendance_session_approved_at" json:"attendance_session_approved_at,omitempty"`
	AttendanceSessionApprovedBy      *uuid.UUID `gorm:"type:uuid;column:attendance_session_approved_by" json:"attendance_session_approved_by,omitempty"`

	AttendanceSessionCreatedAt time.Time      `gorm:"column:attendance_session_created_at;autoCreateTime" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt *time.Time     `gorm:"column:attendance_session_updated_at;autoUpdateTime" json:"attendance_session_updated_at,omitempty"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index" json:"attendance_session_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

func (m *AttendanceSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceSessionID == uuid.Nil {
		m.AttendanceSessionID = uuid.New()
	}
	return nil
}
