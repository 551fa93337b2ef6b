package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	CompanyID uuid.UUID `json:"company_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required,min=2,max=100"`
	LastName  *string   `json:"last_name" validate:"omitempty,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	CompanyID uuid.UUID `json:"company_id" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`
	Role         string    `json:"role"`
}
