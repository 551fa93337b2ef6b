package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	"ems_backend/internals/databases/testdb"
	courseModel "ems_backend/internals/features/courses/model"
)

func seedCourse(t *testing.T, db *gorm.DB, companyID uuid.UUID, title, status string) courseModel.CourseModel {
	t.Helper()
	course := courseModel.CourseModel{
		CourseCompanyID:      companyID,
		CourseTitle:          title,
		CourseIsActive:       true,
		CourseApprovalStatus: status,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestApproveItemStampsAndActivates(t *testing.T) {
	db := testdb.Open(t)
	svc := NewApprovalService(db)
	companyID := uuid.New()
	reviewer := uuid.New()

	course := seedCourse(t, db, companyID, "Go Fundamentals", constants.ApprovalPending)

	require.NoError(t, svc.ApproveItem(context.Background(), "course", course.CourseID, companyID, reviewer))

	var got courseModel.CourseModel
	require.NoError(t, db.First(&got, "course_id = ?", course.CourseID).Error)
	assert.Equal(t, constants.ApprovalApproved, got.CourseApprovalStatus)
	assert.True(t, got.CourseIsActive)
	require.NotNil(t, got.CourseApprovedAt)
	require.NotNil(t, got.CourseApprovedBy)
	assert.Equal(t, reviewer, *got.CourseApprovedBy)
	assert.Nil(t, got.CourseRejectionReason)
}

func TestApproveItemClearsPriorRejection(t *testing.T) {
	db := testdb.Open(t)
	svc := NewApprovalService(db)
	companyID := uuid.New()
	reviewer := uuid.New()

	course := seedCourse(t, db, companyID, "Rejected once", constants.ApprovalPending)
	require.NoError(t, svc.RejectItem(context.Background(), "course", course.CourseID, companyID, reviewer, "thin content"))
	require.NoError(t, svc.ApproveItem(context.Background(), "course", course.CourseID, companyID, reviewer))

	var got courseModel.CourseModel
	require.NoError(t, db.First(&got, "course_id = ?", course.CourseID).Error)
	assert.Equal(t, constants.ApprovalApproved, got.CourseApprovalStatus)
	assert.Nil(t, got.CourseRejectionReason)
	assert.True(t, got.CourseIsActive)
}

func TestRejectItemDeactivatesAndClearsStamps(t *testing.T) {
	db := testdb.Open(t)
	svc := NewApprovalService(db)
	companyID := uuid.New()
	reviewer := uuid.New()

	course := seedCourse(t, db, companyID, "Needs work", constants.ApprovalPending)
	require.NoError(t, svc.ApproveItem(context.Background(), "course", course.CourseID, companyID, reviewer))
	require.NoError(t, svc.RejectItem(context.Background(), "course", course.CourseID, companyID, reviewer, "outdated syllabus"))

	var got courseModel.CourseModel
	require.NoError(t, db.First(&got, "course_id = ?", course.CourseID).Error)
	assert.Equal(t, constants.ApprovalRejected, got.CourseApprovalStatus)
	assert.False(t, got.CourseIsActive)
	require.NotNil(t, got.CourseRejectionReason)
	assert.Equal(t, "outdated syllabus", *got.CourseRejectionReason)
	assert.Nil(t, got.CourseApprovedAt)
	assert.Nil(t, got.CourseApprovedBy)
}

func TestRejectItemRequiresReason(t *testing.T) {
	db := testdb.Open(t)
	svc := NewApprovalService(db)
	companyID := uuid.New()

	course := seedCourse(t, db, companyID, "Untouched", constants.ApprovalPending)

	err := svc.RejectItem(context.Background(), "course", course.CourseID, companyID, uuid.New(), "   ")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "VALIDATION_ERROR", svcErr.Code)

	// The row must be untouched when the reason check fails.
	var got courseModel.CourseModel
	require.NoError(t, db.First(&got, "course_id = ?", course.CourseID).Error)
	assert.Equal(t, constants.ApprovalPending, got.CourseApprovalStatus)
	assert.True(t, got.CourseIsActive)
}

func TestUnknownTypeRejected(t *testing.T) {
	db := testdb.Open(t)
	svc := NewApprovalService(db)

	err := svc.ApproveItem(context.Background(), "webinar", uuid.New(), uuid.New(), uuid.New())
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "INVALID_TYPE", svcErr.Code)

	err = svc.RejectItem(context.Background(), "webinar", uuid.New(), uuid.New(), uuid.New(), "reason")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "INVALID_TYPE", svcErr.Code)
}

func TestApproveMissingRowIsNotFound(t *testing.T) {
	db := testdb.Open(t)
	svc := NewApprovalService(db)

	err := svc.ApproveItem(context.Background(), "course", uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetPendingItemsAggregatesAcrossTypes(t *testing.T) {
	db := testdb.Open(t)
	svc := NewApprovalService(db)
	companyID := uuid.New()

	course := seedCourse(t, db, companyID, "Parent course", constants.ApprovalPending)

	lesson := courseModel.LessonModel{
		LessonCourseModuleID: uuid.New(),
		LessonCourseID:       course.CourseID,
		LessonCompanyID:      companyID,
		LessonTitle:          "Pending lesson",
		LessonIsActive:       true,
		LessonApprovalStatus: constants.ApprovalPending,
	}
	require.NoError(t, db.Create(&lesson).Error)

	// Approved rows and other tenants stay out of the queue.
	seedCourse(t, db, companyID, "Already approved", constants.ApprovalApproved)
	seedCourse(t, db, uuid.New(), "Other tenant", constants.ApprovalPending)

	items, err := svc.GetPendingItems(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// kindOrder puts courses before lessons regardless of goroutine timing.
	assert.Equal(t, "course", items[0].EntityType)
	assert.Equal(t, course.CourseID, items[0].ID)
	assert.Equal(t, "lesson", items[1].EntityType)
	require.NotNil(t, items[1].CourseName)
	assert.Equal(t, "Parent course", *items[1].CourseName)
}

func TestGetPendingItemsNewestFirstWithinType(t *testing.T) {
	db := testdb.Open(t)
	svc := NewApprovalService(db)
	companyID := uuid.New()

	older := seedCourse(t, db, companyID, "Older", constants.ApprovalPending)
	require.NoError(t, db.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", older.CourseID).
		Update("course_created_at", time.Now().Add(-time.Hour)).Error)
	newer := seedCourse(t, db, companyID, "Newer", constants.ApprovalPending)

	items, err := svc.GetPendingItems(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.CourseID, items[0].ID)
	assert.Equal(t, older.CourseID, items[1].ID)
}
