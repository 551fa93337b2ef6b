package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "ems_backend/internals/features/leads/dto"
	model "ems_backend/internals/features/leads/model"
)

type LeadService struct {
	DB *gorm.DB
}

func NewLeadService(db *gorm.DB) *LeadService {
	return &LeadService{DB: db}
}

// Capture stores an unauthenticated landing-page submission as a NEW lead.
func (s *LeadService) Capture(ctx context.Context, req dto.CaptureLeadRequest) (*model.LeadModel, error) {
	lead := model.LeadModel{
		LeadCompanyID: req.CompanyID,
		LeadName:      req.Name,
		LeadEmail:     req.Email,
		LeadPhone:     req.Phone,
		LeadSource:    req.Source,
		LeadTags:      pq.StringArray(req.Tags),
		LeadMetadata:  req.Metadata,
	}
	if err := s.DB.WithContext(ctx).Create(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns a page of the company's leads, optionally filtered by status.
func (s *LeadService) List(ctx context.Context, companyID uuid.UUID, status string, limit, offset int) ([]model.LeadModel, int64, error) {
	q := s.DB.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("lead_company_id = ?", companyID)
	if status != "" {
		q = q.Where("lead_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	leads := []model.LeadModel{}
	err := q.Order("lead_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&leads).Error
	return leads, total, err
}

// Update applies the partial admin edit (status / assignee / tags).
func (s *LeadService) Update(ctx context.Context, companyID, leadID uuid.UUID, req dto.UpdateLeadRequest) (*model.LeadModel, error) {
	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["lead_status"] = *req.Status
	}
	if req.AssignedTo != nil {
		updates["lead_assigned_to"] = *req.AssignedTo
	}
	if req.Tags != nil {
		updates["lead_tags"] = pq.StringArray(req.Tags)
	}

	if len(updates) > 0 {
		res := s.DB.WithContext(ctx).
			Model(&model.LeadModel{}).
			Where("lead_id = ? AND lead_company_id = ?", leadID, companyID).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	var lead model.LeadModel
	err := s.DB.WithContext(ctx).
		Where("lead_id = ? AND lead_company_id = ?", leadID, companyID).
		First(&lead).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
