package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	courseModel "ems_backend/internals/features/courses/model"
	model "ems_backend/internals/features/enrollments/model"
)

type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// Enroll registers a student on a course. Re-enrolling after a drop
// reactivates the existing row instead of violating the unique pair.
func (s *EnrollmentService) Enroll(ctx context.Context, companyID, courseID, studentUserID uuid.UUID) (*model.EnrollmentModel, error) {
	var course courseModel.CourseModel
	err := s.DB.WithContext(ctx).
		Where("course_id = ? AND course_company_id = ?", courseID, companyID).
		Where("course_is_active = ?", true).
		Where("course_approval_status = ?", constants.ApprovalApproved).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course is not open for enrollment")
		}
		return nil, err
	}

	var enr model.EnrollmentModel
	err = s.DB.WithContext(ctx).
		Where("enrollment_course_id = ? AND enrollment_student_user_id = ?", courseID, studentUserID).
		First(&enr).Error
	switch {
	case err == nil:
		if enr.EnrollmentStatus == constants.EnrollmentActive && enr.EnrollmentIsActive {
			return &enr, nil // already enrolled, idempotent
		}
		updates := map[string]interface{}{
			"enrollment_status":    constants.EnrollmentActive,
			"enrollment_is_active": true,
		}
		if err := s.DB.WithContext(ctx).Model(&enr).Updates(updates).Error; err != nil {
			return nil, err
		}
		enr.EnrollmentStatus = constants.EnrollmentActive
		enr.EnrollmentIsActive = true
		return &enr, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		enr = model.EnrollmentModel{
			EnrollmentCompanyID:     companyID,
			EnrollmentCourseID:      courseID,
			EnrollmentStudentUserID: studentUserID,
			EnrollmentStatus:        constants.EnrollmentActive,
			EnrollmentIsActive:      true,
		}
		if err := s.DB.WithContext(ctx).Create(&enr).Error; err != nil {
			return nil, err
		}
		return &enr, nil
	default:
		return nil, err
	}
}

// Drop marks the enrollment DROPPED. The row stays so history survives and a
// later re-enroll reactivates it.
func (s *EnrollmentService) Drop(ctx context.Context, companyID, courseID, studentUserID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("enrollment_company_id = ? AND enrollment_course_id = ? AND enrollment_student_user_id = ?",
			companyID, courseID, studentUserID).
		Updates(map[string]interface{}{
			"enrollment_status":    constants.EnrollmentDropped,
			"enrollment_is_active": false,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MyCourses returns the approved courses the student is actively enrolled in.
func (s *EnrollmentService) MyCourses(ctx context.Context, companyID, studentUserID uuid.UUID) ([]courseModel.CourseModel, error) {
	courses := []courseModel.CourseModel{}
	err := s.DB.WithContext(ctx).
		Model(&courseModel.CourseModel{}).
		Joins("JOIN enrollments ON enrollments.enrollment_course_id = courses.course_id").
		Where("enrollments.enrollment_student_user_id = ?", studentUserID).
		Where("enrollments.enrollment_status = ?", constants.EnrollmentActive).
		Where("enrollments.enrollment_is_active = ?", true).
		Where("enrollments.enrollment_deleted_at IS NULL").
		Where("courses.course_company_id = ?", companyID).
		Where("courses.course_approval_status = ?", constants.ApprovalApproved).
		Order("courses.course_created_at DESC").
		Find(&courses).Error
	return courses, err
}
