package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyModel struct {
	CompanyID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:company_id" json:"company_id"`

	CompanyName string  `gorm:"not null;column:company_name" json:"company_name"`
	CompanySlug string  `gorm:"uniqueIndex;column:company_slug" json:"company_slug"`
	CompanyEmail *string `gorm:"column:company_email" json:"company_email,omitempty"`

	CompanyIsActive bool `gorm:"not null;default:true;column:company_is_active" json:"company_is_active"`

	CompanyCreatedAt time.Time      `gorm:"column:company_created_at;autoCreateTime" json:"company_created_at"`
	CompanyUpdatedAt *time.Time     `gorm:"column:company_updated_at;autoUpdateTime" json:"company_updated_at,omitempty"`
	CompanyDeletedAt gorm.DeletedAt `gorm:"column:company_deleted_at;index" json:"company_deleted_at,omitempty"`
}

func (CompanyModel) TableName() string { return "companies" }

func (m *CompanyModel) BeforeCreate(tx *gorm.DB) error {
	if m.CompanyID == uuid.Nil {
		m.CompanyID = uuid.New()
	}
	return nil
}
