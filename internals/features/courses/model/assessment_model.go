package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`

	AssignmentCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_company_id" json:"assignment_company_id"`
	AssignmentCourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_course_id" json:"assignment_course_id"`

	AssignmentTitle        string     `gorm:"not null;column:assignment_title" json:"assignment_title"`
	AssignmentInstructions *string    `gorm:"column:assignment_instructions" json:"assignment_instructions,omitempty"`
	AssignmentDueAt        *time.Time `gorm:"column:assignment_due_at" json:"assignment_due_at,omitempty"`

	AssignmentIsActive bool `gorm:"not null;default:true;column:assignment_is_active" json:"assignment_is_active"`

	AssignmentApprovalStatus  string     `gorm:"not null;default:'PENDING';index;column:assignment_approval_status" json:"assignment_approval_status"`
	AssignmentRejectionReason *string    `gorm:"column:assignment_rejection_reason" json:"assignment_rejection_reason,omitempty"`
	AssignmentApprovedAt      *time.Time `gorm:"column:assignment_approved_at" json:"assignment_approved_at,omitempty"`
	AssignmentApprovedBy      *uuid.UUID `gorm:"type:uuid;column:assignment_approved_by" json:"assignment_approved_by,omitempty"`

	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt *time.Time     `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at,omitempty"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }

func (m *AssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	return nil
}

type QuizModel struct {
	QuizID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_id" json:"quiz_id"`

	QuizCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_company_id" json:"quiz_company_id"`
	QuizCourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_course_id" json:"quiz_course_id"`

	QuizTitle string `gorm:"not null;column:quiz_title" json:"quiz_title"`

	// Question payload as stored by the quiz builder; opaque to the backend.
	QuizQuestions datatypes.JSON `gorm:"column:quiz_questions" json:"quiz_questions,omitempty"`

	QuizDurationMinutes *int `gorm:"column:quiz_duration_minutes" json:"quiz_duration_minutes,omitempty"`

	QuizIsActive bool `gorm:"not null;default:true;column:quiz_is_active" json:"quiz_is_active"`

	QuizApprovalStatus  string     `gorm:"not null;default:'PENDING';index;column:quiz_approval_status" json:"quiz_approval_status"`
	QuizRejectionReason *string    `gorm:"column:quiz_rejection_reason" json:"quiz_rejection_reason,omitempty"`
	QuizApprovedAt      *time.Time `gorm:"column:quiz_approved_at" json:"quiz_approved_at,omitempty"`
	QuizApprovedBy      *uuid.UUID `gorm:"type:uuid;column:quiz_approved_by" json:"quiz_approved_by,omitempty"`

	QuizCreatedAt time.Time      `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt *time.Time     `gorm:"column:quiz_updated_at;autoUpdateTime" json:"quiz_updated_at,omitempty"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"quiz_deleted_at,omitempty"`
}

func (QuizModel) TableName() string { return "quizzes" }

func (m *QuizModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuizID == uuid.Nil {
		m.QuizID = uuid.New()
	}
	return nil
}
