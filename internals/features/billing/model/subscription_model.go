package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionPlanModel struct {
	PlanID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:plan_id" json:"plan_id"`

	PlanCode string `gorm:"uniqueIndex;not null;column:plan_code" json:"plan_code"`
	PlanName string `gorm:"not null;column:plan_name" json:"plan_name"`

	// Monthly price in the smallest currency unit.
	PlanPriceMonthly int64 `gorm:"not null;column:plan_price_monthly" json:"plan_price_monthly"`

	PlanMaxStudents *int `gorm:"column:plan_max_students" json:"plan_max_students,omitempty"`
	PlanMaxTutors   *int `gorm:"column:plan_max_tutors" json:"plan_max_tutors,omitempty"`

	PlanIsActive bool `gorm:"not null;default:true;column:plan_is_active" json:"plan_is_active"`

	PlanCreatedAt time.Time `gorm:"column:plan_created_at;autoCreateTime" json:"plan_created_at"`
}

func (SubscriptionPlanModel) TableName() string { return "subscription_plans" }

func (m *SubscriptionPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.PlanID == uuid.Nil {
		m.PlanID = uuid.New()
	}
	return nil
}

type SubscriptionModel struct {
	SubscriptionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subscription_id" json:"subscription_id"`

	SubscriptionCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:subscription_company_id" json:"subscription_company_id"`
	SubscriptionPlanID    uuid.UUID `gorm:"type:uuid;not null;column:subscription_plan_id" json:"subscription_plan_id"`

	// Midtrans order id; the webhook resolves the row by this.
	SubscriptionOrderID string `gorm:"uniqueIndex;not null;column:subscription_order_id" json:"subscription_order_id"`

	// PENDING_PAYMENT | ACTIVE | PAST_DUE | CANCELED | EXPIRED
	SubscriptionStatus string `gorm:"not null;default:'PENDING_PAYMENT';index;column:subscription_status" json:"subscription_status"`

	SubscriptionCurrentPeriodEnd *time.Time `gorm:"column:subscription_current_period_end" json:"subscription_current_period_end,omitempty"`

	SubscriptionCreatedAt time.Time      `gorm:"column:subscription_created_at;autoCreateTime" json:"subscription_created_at"`
	SubscriptionUpdatedAt *time.Time     `gorm:"column:subscription_updated_at;autoUpdateTime" json:"subscription_updated_at,omitempty"`
	SubscriptionDeletedAt gorm.DeletedAt `gorm:"column:subscription_deleted_at;index" json:"subscription_deleted_at,omitempty"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }

func (m *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubscriptionID == uuid.Nil {
		m.SubscriptionID = uuid.New()
	}
	return nil
}
