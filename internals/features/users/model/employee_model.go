package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeModel struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_id" json:"employee_id"`

	EmployeeCompanyID uuid.UUID  `gorm:"type:uuid;not null;index;column:employee_company_id" json:"employee_company_id"`
	EmployeeBranchID  *uuid.UUID `gorm:"type:uuid;column:employee_branch_id" json:"employee_branch_id,omitempty"`

	// Link to the auth account. Nullable: staff records can exist before their
	// login is provisioned.
	EmployeeUserID *uuid.UUID `gorm:"type:uuid;index;column:employee_user_id" json:"employee_user_id,omitempty"`

	EmployeeFirstName string  `gorm:"not null;column:employee_first_name" json:"employee_first_name"`
	EmployeeLastName  *string `gorm:"column:employee_last_name" json:"employee_last_name,omitempty"`
	EmployeeEmail     string  `gorm:"not null;index;column:employee_email" json:"employee_email"`
	EmployeePhone     *string `gorm:"column:employee_phone" json:"employee_phone,omitempty"`

	// Free-text job title; tutor resolution fuzzy-matches against it.
	EmployeeDesignationTitle *string `gorm:"column:employee_designation_title" json:"employee_designation_title,omitempty"`

	EmployeeIsActive bool `gorm:"not null;default:true;column:employee_is_active" json:"employee_is_active"`

	EmployeeCreatedAt time.Time      `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt *time.Time     `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at,omitempty"`
	EmployeeDeletedAt gorm.DeletedAt `gorm:"column:employee_deleted_at;index" json:"employee_deleted_at,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }

func (m *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EmployeeID == uuid.Nil {
		m.EmployeeID = uuid.New()
	}
	return nil
}
