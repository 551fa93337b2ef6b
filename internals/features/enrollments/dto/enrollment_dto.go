package dto

import "github.com/google/uuid"

type EnrollRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

type DropRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}
