package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	"ems_backend/internals/databases/testdb"
	courseModel "ems_backend/internals/features/courses/model"
)

func seedOpenCourse(t *testing.T, db *gorm.DB, companyID uuid.UUID) courseModel.CourseModel {
	t.Helper()
	course := courseModel.CourseModel{
		CourseCompanyID:      companyID,
		CourseTitle:          "Open course",
		CourseIsActive:       true,
		CourseApprovalStatus: constants.ApprovalApproved,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestEnrollRejectsClosedCourse(t *testing.T) {
	db := testdb.Open(t)
	svc := NewEnrollmentService(db)
	companyID := uuid.New()

	pending := courseModel.CourseModel{
		CourseCompanyID:      companyID,
		CourseTitle:          "Still pending",
		CourseIsActive:       true,
		CourseApprovalStatus: constants.ApprovalPending,
	}
	require.NoError(t, db.Create(&pending).Error)

	_, err := svc.Enroll(context.Background(), companyID, pending.CourseID, uuid.New())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestEnrollIsIdempotentAndReactivatesAfterDrop(t *testing.T) {
	db := testdb.Open(t)
	svc := NewEnrollmentService(db)
	companyID := uuid.New()
	studentID := uuid.New()
	course := seedOpenCourse(t, db, companyID)

	first, err := svc.Enroll(context.Background(), companyID, course.CourseID, studentID)
	require.NoError(t, err)

	again, err := svc.Enroll(context.Background(), companyID, course.CourseID, studentID)
	require.NoError(t, err)
	assert.Equal(t, first.EnrollmentID, again.EnrollmentID)

	require.NoError(t, svc.Drop(context.Background(), companyID, course.CourseID, studentID))

	revived, err := svc.Enroll(context.Background(), companyID, course.CourseID, studentID)
	require.NoError(t, err)
	// Same row resurrected, not a duplicate.
	assert.Equal(t, first.EnrollmentID, revived.EnrollmentID)
	assert.Equal(t, constants.EnrollmentActive, revived.EnrollmentStatus)
	assert.True(t, revived.EnrollmentIsActive)
}

func TestDropWithoutEnrollmentIsNotFound(t *testing.T) {
	db := testdb.Open(t)
	svc := NewEnrollmentService(db)

	err := svc.Drop(context.Background(), uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMyCoursesOnlyActiveApproved(t *testing.T) {
	db := testdb.Open(t)
	svc := NewEnrollmentService(db)
	companyID := uuid.New()
	studentID := uuid.New()

	kept := seedOpenCourse(t, db, companyID)
	dropped := seedOpenCourse(t, db, companyID)

	_, err := svc.Enroll(context.Background(), companyID, kept.CourseID, studentID)
	require.NoError(t, err)
	_, err = svc.Enroll(context.Background(), companyID, dropped.CourseID, studentID)
	require.NoError(t, err)
	require.NoError(t, svc.Drop(context.Background(), companyID, dropped.CourseID, studentID))

	// Approval revoked after enrollment also hides the course.
	revoked := seedOpenCourse(t, db, companyID)
	_, err = svc.Enroll(context.Background(), companyID, revoked.CourseID, studentID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", revoked.CourseID).
		Update("course_approval_status", constants.ApprovalRejected).Error)

	got, err := svc.MyCourses(context.Background(), companyID, studentID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, kept.CourseID, got[0].CourseID)
}
