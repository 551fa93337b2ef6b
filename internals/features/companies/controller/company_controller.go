package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "ems_backend/internals/features/companies/model"
	helper "ems_backend/internals/helpers"
)

// CompanyController is thin enough to talk to GORM directly.
type CompanyController struct {
	DB *gorm.DB
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db}
}

type companyWithSubscription struct {
	model.CompanyModel
	SubscriptionStatus *string `json:"subscription_status,omitempty" gorm:"column:subscription_status"`
}

/* ===============================
   GET /api/o/companies?page=&per_page=
   =============================== */
func (ctl *CompanyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.CompanyModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count companies")
	}

	rows := []companyWithSubscription{}
	err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.CompanyModel{}).
		Select("companies.*, subscriptions.subscription_status").
		Joins("LEFT JOIN subscriptions ON subscriptions.subscription_company_id = companies.company_id AND subscriptions.subscription_deleted_at IS NULL").
		Order("companies.company_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load companies")
	}

	return helper.JsonList(c, "Companies", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

/* ===============================
   GET /api/a/company (tenant self-read)
   =============================== */
func (ctl *CompanyController) Self(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var company model.CompanyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("company_id = ?", companyID).
		First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Company not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load company")
	}

	branches := []model.BranchModel{}
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("branch_company_id = ?", companyID).
		Order("branch_created_at ASC").
		Find(&branches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load branches")
	}

	return helper.JsonOK(c, "Company", fiber.Map{
		"company":  company,
		"branches": branches,
	})
}
