package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CaptureLeadRequest is the public landing-page form. company_id rides in the
// body because the caller is unauthenticated.
type CaptureLeadRequest struct {
	CompanyID uuid.UUID      `json:"company_id" validate:"required"`
	Name      string         `json:"name" validate:"required,min=2,max=150"`
	Email     *string        `json:"email" validate:"omitempty,email"`
	Phone     *string        `json:"phone" validate:"omitempty,max=30"`
	Source    *string        `json:"source" validate:"omitempty,max=100"`
	Tags      []string       `json:"tags" validate:"omitempty,dive,max=50"`
	Metadata  datatypes.JSON `json:"metadata"`
}

type UpdateLeadRequest struct {
	Status     *string    `json:"status" validate:"omitempty,oneof=NEW CONTACTED QUALIFIED CONVERTED LOST"`
	AssignedTo *uuid.UUID `json:"assigned_to"`
	Tags       []string   `json:"tags" validate:"omitempty,dive,max=50"`
}
