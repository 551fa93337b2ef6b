package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	model "ems_backend/internals/features/billing/model"
	companyModel "ems_backend/internals/features/companies/model"
)

type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

func (s *BillingService) ListPlans(ctx context.Context) ([]model.SubscriptionPlanModel, error) {
	plans := []model.SubscriptionPlanModel{}
	err := s.DB.WithContext(ctx).
		Where("plan_is_active = ?", true).
		Order("plan_price_monthly ASC").
		Find(&plans).Error
	return plans, err
}

// Checkout opens a PENDING_PAYMENT subscription on the plan and returns the
// Snap token the frontend needs to collect payment.
func (s *BillingService) Checkout(ctx context.Context, companyID, planID uuid.UUID) (*model.SubscriptionModel, string, error) {
	var plan model.SubscriptionPlanModel
	err := s.DB.WithContext(ctx).
		Where("plan_id = ? AND plan_is_active = ?", planID, true).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fiber.NewError(fiber.StatusNotFound, "Plan not found")
		}
		return nil, "", err
	}

	var company companyModel.CompanyModel
	if err := s.DB.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&company).Error; err != nil {
		return nil, "", err
	}

	sub := model.SubscriptionModel{
		SubscriptionCompanyID: companyID,
		SubscriptionPlanID:    plan.PlanID,
		SubscriptionOrderID:   fmt.Sprintf("sub-%s", uuid.New().String()),
		SubscriptionStatus:    constants.SubscriptionPendingPayment,
	}
	if err := s.DB.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, "", err
	}

	email := ""
	if company.CompanyEmail != nil {
		email = *company.CompanyEmail
	}
	token, err := GenerateSnapToken(sub.SubscriptionOrderID, plan.PlanPriceMonthly, company.CompanyName, email)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadGateway, "Payment gateway refused the transaction")
	}

	return &sub, token, nil
}

// MySubscription returns the company's most recent subscription row.
func (s *BillingService) MySubscription(ctx context.Context, companyID uuid.UUID) (*model.SubscriptionModel, error) {
	var sub model.SubscriptionModel
	err := s.DB.WithContext(ctx).
		Where("subscription_company_id = ?", companyID).
		Order("subscription_created_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
