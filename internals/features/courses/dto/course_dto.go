package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "ems_backend/internals/features/courses/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type CreateCourseRequest struct {
	CourseTitle        string     `json:"course_title" validate:"required,max=200"`
	CourseDescription  *string    `json:"course_description" validate:"omitempty"`
	CourseThumbnailURL *string    `json:"course_thumbnail_url" validate:"omitempty,max=2000"`
	CourseTutorID      *uuid.UUID `json:"course_tutor_id" validate:"omitempty"`
}

func (r *CreateCourseRequest) ToModel(companyID uuid.UUID) *model.CourseModel {
	return &model.CourseModel{
		CourseCompanyID:    companyID,
		CourseTitle:        strings.TrimSpace(r.CourseTitle),
		CourseDescription:  r.CourseDescription,
		CourseThumbnailURL: r.CourseThumbnailURL,
		CourseTutorID:      r.CourseTutorID,
		CourseIsActive:     true,
	}
}

// Update (partial)
type UpdateCourseRequest struct {
	CourseTitle        *string    `json:"course_title" validate:"omitempty,max=200"`
	CourseDescription  *string    `json:"course_description" validate:"omitempty"`
	CourseThumbnailURL *string    `json:"course_thumbnail_url" validate:"omitempty,max=2000"`
	CourseTutorID      *uuid.UUID `json:"course_tutor_id" validate:"omitempty"`
	CourseIsActive     *bool      `json:"course_is_active" validate:"omitempty"`
}

type UpdateVisibilityRequest struct {
	Visibility string `json:"visibility" validate:"required,oneof=PUBLIC PRIVATE ENROLLED"`
}

type DeleteCourseRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

/* =========================================================
   2) RESPONSE DTO (derived fields computed per viewer)
========================================================= */

type MaterialResponse struct {
	CourseMaterialID             uuid.UUID  `json:"course_material_id"`
	CourseMaterialTitle          string     `json:"course_material_title"`
	CourseMaterialFileURL        *string    `json:"course_material_file_url,omitempty"`
	CourseMaterialTargetAudience string     `json:"course_material_target_audience"`
	CourseMaterialIsActive       bool       `json:"course_material_is_active"`
	CourseMaterialApprovalStatus string     `json:"course_material_approval_status"`

	// Derived per viewer, never stored. Materials never resolve to PUBLIC.
	Visibility string `json:"visibility"`
}

type LessonResponse struct {
	LessonID             uuid.UUID `json:"lesson_id"`
	LessonTitle          string    `json:"lesson_title"`
	LessonOrder          int       `json:"lesson_order"`
	LessonIsPreview      bool      `json:"lesson_is_preview"`
	LessonIsActive       bool      `json:"lesson_is_active"`
	LessonApprovalStatus string    `json:"lesson_approval_status"`

	LessonVideoURL    *string `json:"lesson_video_url,omitempty"`
	LessonContentBody *string `json:"lesson_content_body,omitempty"`

	// Derived: "{module_number}.{lesson_index+1}"
	LessonNumber string `json:"lesson_number"`
	Visibility   string `json:"visibility"`
	// Students only: ENROLLED content behind a missing enrollment.
	IsLocked bool `json:"is_locked"`

	Materials []MaterialResponse `json:"materials"`
}

type ModuleResponse struct {
	CourseModuleID       uuid.UUID `json:"course_module_id"`
	CourseModuleTitle    string    `json:"course_module_title"`
	CourseModuleOrder    int       `json:"course_module_order"`
	CourseModuleIsActive bool      `json:"course_module_is_active"`

	// Derived, 1-based by module order.
	ModuleNumber int    `json:"module_number"`
	Visibility   string `json:"visibility"`

	Lessons   []LessonResponse   `json:"lessons"`
	Materials []MaterialResponse `json:"materials"`
}

type CourseDetailResponse struct {
	CourseID             uuid.UUID  `json:"course_id"`
	CourseCompanyID      uuid.UUID  `json:"course_company_id"`
	CourseTitle          string     `json:"course_title"`
	CourseDescription    *string    `json:"course_description,omitempty"`
	CourseThumbnailURL   *string    `json:"course_thumbnail_url,omitempty"`
	CourseTutorID        *uuid.UUID `json:"course_tutor_id,omitempty"`
	CourseIsActive       bool       `json:"course_is_active"`
	CourseApprovalStatus string     `json:"course_approval_status"`
	CourseCreatedAt      time.Time  `json:"course_created_at"`

	IsEnrolled bool `json:"is_enrolled"`

	Modules   []ModuleResponse   `json:"modules"`
	Materials []MaterialResponse `json:"materials"`
}

// VisibilityUpdateResponse echoes the requested visibility back verbatim: the
// UI treats the request value as authoritative, it is not re-derived from the
// stored flags the way the read path derives it.
type VisibilityUpdateResponse struct {
	EntityType string    `json:"entity_type"`
	ID         uuid.UUID `json:"id"`
	Visibility string    `json:"visibility"`
}
