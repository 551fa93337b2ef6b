package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleModel struct {
	RoleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:role_id" json:"role_id"`

	// TUTOR, ACADEMIC_MANAGER, MANAGER, ADMIN
	RoleName string `gorm:"uniqueIndex;not null;column:role_name" json:"role_name"`

	RoleCreatedAt time.Time `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
}

func (RoleModel) TableName() string { return "roles" }

func (m *RoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoleID == uuid.Nil {
		m.RoleID = uuid.New()
	}
	return nil
}

// UserRoleModel is a role grant scoped to tenant + branch. The composite
// unique index is what makes role upserts idempotent.
type UserRoleModel struct {
	UserRoleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_role_id" json:"user_role_id"`

	UserRoleUserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_roles_grant,priority:1;column:user_role_user_id" json:"user_role_user_id"`
	UserRoleRoleID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_roles_grant,priority:2;column:user_role_role_id" json:"user_role_role_id"`
	UserRoleCompanyID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_roles_grant,priority:3;column:user_role_company_id" json:"user_role_company_id"`
	UserRoleBranchID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_user_roles_grant,priority:4;column:user_role_branch_id" json:"user_role_branch_id,omitempty"`

	UserRoleAssignedAt time.Time `gorm:"column:user_role_assigned_at;autoCreateTime" json:"user_role_assigned_at"`
}

func (UserRoleModel) TableName() string { return "user_roles" }

func (m *UserRoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserRoleID == uuid.Nil {
		m.UserRoleID = uuid.New()
	}
	return nil
}
