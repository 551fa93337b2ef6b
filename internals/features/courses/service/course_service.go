package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	dto "ems_backend/internals/features/courses/dto"
	model "ems_backend/internals/features/courses/model"
	tutorService "ems_backend/internals/features/tutors/service"
)

// ErrTutorNotAssigned gates course detail reads for tutor sessions.
var ErrTutorNotAssigned = errors.New("tutor is not assigned to this course")

// Profile is the caller's role context, always passed explicitly; the
// service never derives tenant or identity on its own.
type Profile struct {
	UserID     uuid.UUID
	EmployeeID uuid.UUID // staff sessions only
	Role       string
}

type CourseService struct {
	DB *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

/* =========================================================
   Role-scoped listing
========================================================= */

// GetAllCourses narrows the candidate set by role before any approval filter:
// tutors to their assignment union, students to active enrollments over
// approved courses, managers/admins to everything (moderation UIs need
// PENDING and REJECTED rows too). Newest first.
func (s *CourseService) GetAllCourses(ctx context.Context, companyID uuid.UUID, p Profile) ([]model.CourseModel, error) {
	q := s.DB.WithContext(ctx).
		Where("course_company_id = ?", companyID).
		Order("course_created_at DESC")

	switch p.Role {
	case constants.RoleTutor:
		ids, err := tutorService.ResolveAssignedCourseIDs(ctx, s.DB, companyID, p.EmployeeID)
		if err != nil {
			return nil, err
		}
		// Empty union short-circuits: tutors never see unrelated company
		// courses, so no course query is issued at all.
		if len(ids) == 0 {
			return []model.CourseModel{}, nil
		}
		q = q.Where("course_id IN ?", ids)

	case constants.RoleStudent:
		ids, err := s.enrolledCourseIDs(ctx, companyID, p.UserID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []model.CourseModel{}, nil
		}
		q = q.Where("course_id IN ?", ids).
			Where("course_approval_status = ?", constants.ApprovalApproved)
	}

	var courses []model.CourseModel
	if err := q.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) enrolledCourseIDs(ctx context.Context, companyID, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Table("enrollments").
		Where("enrollment_company_id = ? AND enrollment_student_user_id = ?", companyID, userID).
		Where("enrollment_status = ? AND enrollment_is_active = ?", constants.EnrollmentActive, true).
		Where("enrollment_deleted_at IS NULL").
		Pluck("enrollment_course_id", &ids).Error
	return ids, err
}

/* =========================================================
   Detail read + derivation
========================================================= */

// GetCourseDetails loads the course with its nested tree and runs the
// per-viewer post-processing (ordering, numbering, visibility, redaction).
func (s *CourseService) GetCourseDetails(ctx context.Context, id, companyID uuid.UUID, p Profile) (dto.CourseDetailResponse, error) {
	var course model.CourseModel
	if err := s.DB.WithContext(ctx).
		Where("course_id = ? AND course_company_id = ?", id, companyID).
		First(&course).Error; err != nil {
		return dto.CourseDetailResponse{}, err
	}

	if p.Role == constants.RoleTutor {
		assigned, err := tutorService.IsTutorAssigned(ctx, s.DB, companyID, id, p.EmployeeID)
		if err != nil {
			return dto.CourseDetailResponse{}, err
		}
		if !assigned {
			return dto.CourseDetailResponse{}, ErrTutorNotAssigned
		}
	}

	viewer := Viewer{Role: p.Role}
	if p.Role == constants.RoleStudent {
		enrolled, err := s.isEnrolled(ctx, companyID, id, p.UserID)
		if err != nil {
			return dto.CourseDetailResponse{}, err
		}
		viewer.IsEnrolled = enrolled
	}

	var modules []model.CourseModuleModel
	if err := s.DB.WithContext(ctx).
		Where("course_module_course_id = ? AND course_module_company_id = ?", id, companyID).
		Find(&modules).Error; err != nil {
		return dto.CourseDetailResponse{}, err
	}

	var lessons []model.LessonModel
	if err := s.DB.WithContext(ctx).
		Where("lesson_course_id = ? AND lesson_company_id = ?", id, companyID).
		Find(&lessons).Error; err != nil {
		return dto.CourseDetailResponse{}, err
	}

	moduleIDs := make([]uuid.UUID, 0, len(modules))
	for _, m := range modules {
		moduleIDs = append(moduleIDs, m.CourseModuleID)
	}
	lessonIDs := make([]uuid.UUID, 0, len(lessons))
	for _, l := range lessons {
		lessonIDs = append(lessonIDs, l.LessonID)
	}

	matQ := s.DB.WithContext(ctx).
		Where("course_material_company_id = ?", companyID).
		Where("course_material_course_id = ?", id)
	if len(moduleIDs) > 0 && len(lessonIDs) > 0 {
		matQ = s.DB.WithContext(ctx).
			Where("course_material_company_id = ?", companyID).
			Where("course_material_course_id = ? OR course_material_course_module_id IN ? OR course_material_lesson_id IN ?", id, moduleIDs, lessonIDs)
	} else if len(moduleIDs) > 0 {
		matQ = s.DB.WithContext(ctx).
			Where("course_material_company_id = ?", companyID).
			Where("course_material_course_id = ? OR course_material_course_module_id IN ?", id, moduleIDs)
	}

	var materials []model.CourseMaterialModel
	if err := matQ.Find(&materials).Error; err != nil {
		return dto.CourseDetailResponse{}, err
	}

	return BuildCourseTree(course, modules, lessons, materials, viewer), nil
}

func (s *CourseService) isEnrolled(ctx context.Context, companyID, courseID, userID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("enrollments").
		Where("enrollment_company_id = ? AND enrollment_course_id = ? AND enrollment_student_user_id = ?", companyID, courseID, userID).
		Where("enrollment_status = ? AND enrollment_is_active = ?", constants.EnrollmentActive, true).
		Where("enrollment_deleted_at IS NULL").
		Count(&n).Error
	return n > 0, err
}

/* =========================================================
   Visibility writes
========================================================= */

var visibilityTargets = map[string]struct {
	Table      string
	Prefix     string
	HasPreview bool
}{
	"module":   {Table: "course_modules", Prefix: "course_module"},
	"lesson":   {Table: "lessons", Prefix: "lesson", HasPreview: true},
	"material": {Table: "course_materials", Prefix: "course_material"},
}

// UpdateContentVisibility maps the abstract three-valued visibility onto the
// per-type flag schema and echoes the requested value back verbatim. The
// response is deliberately NOT re-derived from the stored flags: the UI
// relies on seeing its own request echoed (asymmetric with the read path).
func (s *CourseService) UpdateContentVisibility(ctx context.Context, kind string, id uuid.UUID, visibility string, companyID uuid.UUID) (dto.VisibilityUpdateResponse, error) {
	t, ok := visibilityTargets[kind]
	if !ok {
		return dto.VisibilityUpdateResponse{}, fiber.NewError(fiber.StatusBadRequest, "unknown content type for visibility update")
	}
	switch visibility {
	case constants.VisibilityPublic, constants.VisibilityPrivate, constants.VisibilityEnrolled:
	default:
		return dto.VisibilityUpdateResponse{}, fiber.NewError(fiber.StatusBadRequest, "unknown visibility value")
	}

	updates := map[string]any{
		t.Prefix + "_is_active": visibility != constants.VisibilityPrivate,
	}
	if t.HasPreview {
		updates[t.Prefix+"_is_preview"] = visibility == constants.VisibilityPublic
	}

	res := s.DB.WithContext(ctx).
		Table(t.Table).
		Where(t.Prefix+"_id = ? AND "+t.Prefix+"_company_id = ? AND "+t.Prefix+"_deleted_at IS NULL", id, companyID).
		Updates(updates)
	if res.Error != nil {
		return dto.VisibilityUpdateResponse{}, res.Error
	}
	if res.RowsAffected == 0 {
		return dto.VisibilityUpdateResponse{}, gorm.ErrRecordNotFound
	}

	return dto.VisibilityUpdateResponse{
		EntityType: kind,
		ID:         id,
		Visibility: visibility,
	}, nil
}

/* =========================================================
   Create / update / soft delete
========================================================= */

// CreateCourse persists a new PENDING course. When a legacy tutor id is set,
// the TUTOR role grant for that employee is provisioned best-effort: failure
// is returned as a warning alongside the result, never rolled back.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest, companyID uuid.UUID) (*model.CourseModel, string, error) {
	course := req.ToModel(companyID)
	course.CourseApprovalStatus = constants.ApprovalPending

	if err := s.DB.WithContext(ctx).Create(course).Error; err != nil {
		return nil, "", err
	}

	warning := s.provisionTutorRole(ctx, companyID, course.CourseTutorID)
	return course, warning, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, id, companyID uuid.UUID, req dto.UpdateCourseRequest) (*model.CourseModel, string, error) {
	var course model.CourseModel
	if err := s.DB.WithContext(ctx).
		Where("course_id = ? AND course_company_id = ?", id, companyID).
		First(&course).Error; err != nil {
		return nil, "", err
	}

	updates := map[string]any{}
	if req.CourseTitle != nil {
		updates["course_title"] = *req.CourseTitle
	}
	if req.CourseDescription != nil {
		updates["course_description"] = *req.CourseDescription
	}
	if req.CourseThumbnailURL != nil {
		updates["course_thumbnail_url"] = *req.CourseThumbnailURL
	}
	if req.CourseTutorID != nil {
		updates["course_tutor_id"] = *req.CourseTutorID
	}
	if req.CourseIsActive != nil {
		updates["course_is_active"] = *req.CourseIsActive
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).
			Model(&course).
			Updates(updates).Error; err != nil {
			return nil, "", err
		}
	}

	warning := s.provisionTutorRole(ctx, companyID, req.CourseTutorID)
	return &course, warning, nil
}

func (s *CourseService) provisionTutorRole(ctx context.Context, companyID uuid.UUID, tutorID *uuid.UUID) string {
	if tutorID == nil || *tutorID == uuid.Nil {
		return ""
	}
	if err := tutorService.EnsureTutorRole(ctx, s.DB, companyID, *tutorID); err != nil {
		log.Printf("[WARN] auto tutor-role assignment failed for employee %s: %v", *tutorID, err)
		return "tutor role could not be auto-assigned: " + err.Error()
	}
	return ""
}

// SoftDeleteCourse marks the row deleted with an audit trail; the row is
// never physically removed. Already-deleted rows are not found again.
func (s *CourseService) SoftDeleteCourse(ctx context.Context, id, companyID, deletedBy uuid.UUID, reason *string) error {
	res := s.DB.WithContext(ctx).
		Model(&model.CourseModel{}).
		Where("course_id = ? AND course_company_id = ?", id, companyID).
		Updates(map[string]any{
			"course_deleted_at":    time.Now().UTC(),
			"course_deleted_by":    deletedBy,
			"course_delete_reason": reason,
			"course_is_active":     false,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
