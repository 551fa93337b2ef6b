package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModuleModel is the grouping level between course and lesson. Modules
// are not independently moderated; their learner visibility derives from
// course_module_is_active alone.
type CourseModuleModel struct {
	CourseModuleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_module_id" json:"course_module_id"`

	CourseModuleCourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:course_module_course_id" json:"course_module_course_id"`
	CourseModuleCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:course_module_company_id" json:"course_module_company_id"`

	CourseModuleTitle       string  `gorm:"not null;column:course_module_title" json:"course_module_title"`
	CourseModuleDescription *string `gorm:"column:course_module_description" json:"course_module_description,omitempty"`

	// Display order; rows created before ordering existed carry 0 and sort first.
	CourseModuleOrder int `gorm:"not null;default:0;column:course_module_order" json:"course_module_order"`

	CourseModuleIsActive bool `gorm:"not null;default:true;column:course_module_is_active" json:"course_module_is_active"`

	CourseModuleCreatedAt time.Time      `gorm:"column:course_module_created_at;autoCreateTime" json:"course_module_created_at"`
	CourseModuleUpdatedAt *time.Time     `gorm:"column:course_module_updated_at;autoUpdateTime" json:"course_module_updated_at,omitempty"`
	CourseModuleDeletedAt gorm.DeletedAt `gorm:"column:course_module_deleted_at;index" json:"course_module_deleted_at,omitempty"`
}

func (CourseModuleModel) TableName() string { return "course_modules" }

func (m *CourseModuleModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseModuleID == uuid.Nil {
		m.CourseModuleID = uuid.New()
	}
	return nil
}
