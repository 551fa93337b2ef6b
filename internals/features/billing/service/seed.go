package service

import (
	"log"

	"gorm.io/gorm"

	model "ems_backend/internals/features/billing/model"
)

func intPtr(v int) *int { return &v }

var defaultPlans = []model.SubscriptionPlanModel{
	{
		PlanCode:         "starter",
		PlanName:         "Starter",
		PlanPriceMonthly: 499000,
		PlanMaxStudents:  intPtr(100),
		PlanMaxTutors:    intPtr(5),
	},
	{
		PlanCode:         "growth",
		PlanName:         "Growth",
		PlanPriceMonthly: 1499000,
		PlanMaxStudents:  intPtr(1000),
		PlanMaxTutors:    intPtr(50),
	},
	{
		PlanCode:         "enterprise",
		PlanName:         "Enterprise",
		PlanPriceMonthly: 4999000,
	},
}

// SeedPlans inserts the default plan catalog, keyed on plan_code so reruns
// are no-ops and operator-edited prices survive restarts.
func SeedPlans(db *gorm.DB) error {
	for _, plan := range defaultPlans {
		p := plan
		if err := db.Where("plan_code = ?", p.PlanCode).
			FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}
	log.Printf("[INFO] Subscription plan catalog ready (%d plans)", len(defaultPlans))
	return nil
}
