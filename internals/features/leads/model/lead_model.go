package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LeadModel struct {
	LeadID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lead_id" json:"lead_id"`

	LeadCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:lead_company_id" json:"lead_company_id"`

	LeadName  string  `gorm:"not null;column:lead_name" json:"lead_name"`
	LeadEmail *string `gorm:"index;column:lead_email" json:"lead_email,omitempty"`
	LeadPhone *string `gorm:"column:lead_phone" json:"lead_phone,omitempty"`

	// Where the lead came from (landing page, referral, walk-in, ...).
	LeadSource *string `gorm:"column:lead_source" json:"lead_source,omitempty"`

	// NEW | CONTACTED | QUALIFIED | CONVERTED | LOST
	LeadStatus string `gorm:"not null;default:'NEW';index;column:lead_status" json:"lead_status"`

	LeadTags     pq.StringArray `gorm:"type:text[];column:lead_tags" json:"lead_tags,omitempty"`
	LeadMetadata datatypes.JSON `gorm:"column:lead_metadata" json:"lead_metadata,omitempty"`

	// Employee working the lead.
	LeadAssignedTo *uuid.UUID `gorm:"type:uuid;column:lead_assigned_to" json:"lead_assigned_to,omitempty"`

	LeadCreatedAt time.Time      `gorm:"column:lead_created_at;autoCreateTime" json:"lead_created_at"`
	LeadUpdatedAt *time.Time     `gorm:"column:lead_updated_at;autoUpdateTime" json:"lead_updated_at,omitempty"`
	LeadDeletedAt gorm.DeletedAt `gorm:"column:lead_deleted_at;index" json:"lead_deleted_at,omitempty"`
}

func (LeadModel) TableName() string { return "leads" }

func (m *LeadModel) BeforeCreate(tx *gorm.DB) error {
	if m.LeadID == uuid.Nil {
		m.LeadID = uuid.New()
	}
	return nil
}
