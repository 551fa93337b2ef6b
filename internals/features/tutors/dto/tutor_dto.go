package dto

import "github.com/google/uuid"

type CreateTutorRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`

	Phone            *string    `json:"phone" validate:"omitempty,max=30"`
	DesignationTitle *string    `json:"designation_title" validate:"omitempty,max=120"`
	BranchID         *uuid.UUID `json:"branch_id" validate:"omitempty"`
}

type AssignTutorRoleRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
}
