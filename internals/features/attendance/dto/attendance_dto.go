package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBatchRequest struct {
	CourseID  uuid.UUID  `json:"course_id" validate:"required"`
	Name      string     `json:"name" validate:"required,min=2,max=150"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type CreateSessionRequest struct {
	BatchID uuid.UUID `json:"batch_id" validate:"required"`
	Title   *string   `json:"title" validate:"omitempty,max=200"`
	Date    time.Time `json:"date" validate:"required"`
}

type CreateLiveClassRequest struct {
	CourseID    uuid.UUID  `json:"course_id" validate:"required"`
	BatchID     *uuid.UUID `json:"batch_id"`
	Title       string     `json:"title" validate:"required,min=2,max=200"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	MeetingURL  *string    `json:"meeting_url" validate:"omitempty,url"`
}
