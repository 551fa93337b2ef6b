package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
	"ems_backend/internals/databases/testdb"
	dto "ems_backend/internals/features/courses/dto"
	model "ems_backend/internals/features/courses/model"
	enrollmentModel "ems_backend/internals/features/enrollments/model"
)

func seedCourseRow(t *testing.T, db *gorm.DB, companyID uuid.UUID, title, status string) model.CourseModel {
	t.Helper()
	c := model.CourseModel{
		CourseCompanyID:      companyID,
		CourseTitle:          title,
		CourseIsActive:       true,
		CourseApprovalStatus: status,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func enroll(t *testing.T, db *gorm.DB, companyID, courseID, userID uuid.UUID) {
	t.Helper()
	e := enrollmentModel.EnrollmentModel{
		EnrollmentCompanyID:     companyID,
		EnrollmentCourseID:      courseID,
		EnrollmentStudentUserID: userID,
		EnrollmentStatus:        constants.EnrollmentActive,
		EnrollmentIsActive:      true,
	}
	require.NoError(t, db.Create(&e).Error)
}

func TestGetAllCoursesTutorUnion(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()
	employeeID := uuid.New()

	viaJunction := seedCourseRow(t, db, companyID, "Junction course", constants.ApprovalApproved)
	viaLegacy := seedCourseRow(t, db, companyID, "Legacy course", constants.ApprovalApproved)
	seedCourseRow(t, db, companyID, "Unrelated course", constants.ApprovalApproved)

	require.NoError(t, db.Create(&model.CourseTutorModel{
		CourseTutorCourseID:   viaJunction.CourseID,
		CourseTutorEmployeeID: employeeID,
		CourseTutorCompanyID:  companyID,
	}).Error)
	require.NoError(t, db.Model(&model.CourseModel{}).
		Where("course_id = ?", viaLegacy.CourseID).
		Update("course_tutor_id", employeeID).Error)

	got, err := svc.GetAllCourses(context.Background(), companyID, Profile{
		UserID:     uuid.New(),
		EmployeeID: employeeID,
		Role:       constants.RoleTutor,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := map[uuid.UUID]bool{got[0].CourseID: true, got[1].CourseID: true}
	assert.True(t, ids[viaJunction.CourseID])
	assert.True(t, ids[viaLegacy.CourseID])
}

func TestGetAllCoursesTutorWithNoAssignmentsSeesNothing(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()

	seedCourseRow(t, db, companyID, "Someone else's course", constants.ApprovalApproved)

	got, err := svc.GetAllCourses(context.Background(), companyID, Profile{
		UserID:     uuid.New(),
		EmployeeID: uuid.New(),
		Role:       constants.RoleTutor,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetAllCoursesStudentOnlyApprovedEnrollments(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()
	studentID := uuid.New()

	approved := seedCourseRow(t, db, companyID, "Approved", constants.ApprovalApproved)
	pending := seedCourseRow(t, db, companyID, "Still pending", constants.ApprovalPending)
	seedCourseRow(t, db, companyID, "Not enrolled", constants.ApprovalApproved)

	enroll(t, db, companyID, approved.CourseID, studentID)
	enroll(t, db, companyID, pending.CourseID, studentID)

	got, err := svc.GetAllCourses(context.Background(), companyID, Profile{
		UserID: studentID,
		Role:   constants.RoleStudent,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, approved.CourseID, got[0].CourseID)
}

func TestGetAllCoursesManagerSeesEveryStatus(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()

	seedCourseRow(t, db, companyID, "Approved", constants.ApprovalApproved)
	seedCourseRow(t, db, companyID, "Pending", constants.ApprovalPending)
	seedCourseRow(t, db, companyID, "Rejected", constants.ApprovalRejected)
	seedCourseRow(t, db, uuid.New(), "Other tenant", constants.ApprovalApproved)

	got, err := svc.GetAllCourses(context.Background(), companyID, Profile{
		UserID: uuid.New(),
		Role:   constants.RoleManager,
	})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestGetCourseDetailsTutorGate(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()

	course := seedCourseRow(t, db, companyID, "Guarded", constants.ApprovalApproved)

	_, err := svc.GetCourseDetails(context.Background(), course.CourseID, companyID, Profile{
		UserID:     uuid.New(),
		EmployeeID: uuid.New(),
		Role:       constants.RoleTutor,
	})
	assert.ErrorIs(t, err, ErrTutorNotAssigned)
}

func TestGetCourseDetailsStudentEnrollmentFlows(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()
	studentID := uuid.New()

	course := seedCourseRow(t, db, companyID, "Detail course", constants.ApprovalApproved)
	mod := model.CourseModuleModel{
		CourseModuleCourseID:  course.CourseID,
		CourseModuleCompanyID: companyID,
		CourseModuleTitle:     "Week 1",
		CourseModuleOrder:     1,
		CourseModuleIsActive:  true,
	}
	require.NoError(t, db.Create(&mod).Error)
	body := "full text"
	lesson := model.LessonModel{
		LessonCourseModuleID: mod.CourseModuleID,
		LessonCourseID:       course.CourseID,
		LessonCompanyID:      companyID,
		LessonTitle:          "Intro",
		LessonOrder:          1,
		LessonIsActive:       true,
		LessonApprovalStatus: constants.ApprovalApproved,
		LessonContentBody:    &body,
	}
	require.NoError(t, db.Create(&lesson).Error)

	// Unenrolled: lesson present but locked and redacted.
	out, err := svc.GetCourseDetails(context.Background(), course.CourseID, companyID, Profile{
		UserID: studentID,
		Role:   constants.RoleStudent,
	})
	require.NoError(t, err)
	assert.False(t, out.IsEnrolled)
	require.Len(t, out.Modules, 1)
	require.Len(t, out.Modules[0].Lessons, 1)
	assert.True(t, out.Modules[0].Lessons[0].IsLocked)
	assert.Nil(t, out.Modules[0].Lessons[0].LessonContentBody)

	// Enrolled: same read unlocks the content.
	enroll(t, db, companyID, course.CourseID, studentID)
	out, err = svc.GetCourseDetails(context.Background(), course.CourseID, companyID, Profile{
		UserID: studentID,
		Role:   constants.RoleStudent,
	})
	require.NoError(t, err)
	assert.True(t, out.IsEnrolled)
	require.Len(t, out.Modules[0].Lessons, 1)
	assert.False(t, out.Modules[0].Lessons[0].IsLocked)
	require.NotNil(t, out.Modules[0].Lessons[0].LessonContentBody)
}

func TestUpdateContentVisibilityEchoesRequest(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()

	course := seedCourseRow(t, db, companyID, "Vis course", constants.ApprovalApproved)
	lesson := model.LessonModel{
		LessonCourseModuleID: uuid.New(),
		LessonCourseID:       course.CourseID,
		LessonCompanyID:      companyID,
		LessonTitle:          "L",
		LessonIsActive:       true,
		LessonApprovalStatus: constants.ApprovalPending,
	}
	require.NoError(t, db.Create(&lesson).Error)

	// PUBLIC on an unapproved lesson: stored flags flip, echo is verbatim.
	resp, err := svc.UpdateContentVisibility(context.Background(), "lesson", lesson.LessonID, constants.VisibilityPublic, companyID)
	require.NoError(t, err)
	assert.Equal(t, constants.VisibilityPublic, resp.Visibility)
	assert.Equal(t, "lesson", resp.EntityType)

	var got model.LessonModel
	require.NoError(t, db.First(&got, "lesson_id = ?", lesson.LessonID).Error)
	assert.True(t, got.LessonIsActive)
	assert.True(t, got.LessonIsPreview)

	// PRIVATE clears both flags.
	_, err = svc.UpdateContentVisibility(context.Background(), "lesson", lesson.LessonID, constants.VisibilityPrivate, companyID)
	require.NoError(t, err)
	require.NoError(t, db.First(&got, "lesson_id = ?", lesson.LessonID).Error)
	assert.False(t, got.LessonIsActive)
	assert.False(t, got.LessonIsPreview)
}

func TestUpdateContentVisibilityUnknownTargets(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)

	_, err := svc.UpdateContentVisibility(context.Background(), "course", uuid.New(), constants.VisibilityPublic, uuid.New())
	require.Error(t, err)

	_, err = svc.UpdateContentVisibility(context.Background(), "lesson", uuid.New(), constants.VisibilityPublic, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateCourseDefaultsToPending(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()

	course, warning, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
		CourseTitle: "  New Course  ",
	}, companyID)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, constants.ApprovalPending, course.CourseApprovalStatus)
	assert.Equal(t, "New Course", course.CourseTitle)
	assert.True(t, course.CourseIsActive)
}

func TestCreateCourseTutorRoleWarningIsNonFatal(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()
	ghost := uuid.New() // employee that does not exist

	course, warning, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
		CourseTitle:   "Course with ghost tutor",
		CourseTutorID: &ghost,
	}, companyID)
	require.NoError(t, err)
	assert.NotEmpty(t, warning)

	// The course itself persisted despite the role-grant failure.
	var got model.CourseModel
	require.NoError(t, db.First(&got, "course_id = ?", course.CourseID).Error)
}

func TestSoftDeleteCourseHidesRow(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCourseService(db)
	companyID := uuid.New()
	admin := uuid.New()

	course := seedCourseRow(t, db, companyID, "Doomed", constants.ApprovalApproved)
	reason := "duplicate listing"
	require.NoError(t, svc.SoftDeleteCourse(context.Background(), course.CourseID, companyID, admin, &reason))

	// Default scope no longer sees the row.
	var got model.CourseModel
	err := db.First(&got, "course_id = ?", course.CourseID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Unscoped read keeps the audit trail.
	require.NoError(t, db.Unscoped().First(&got, "course_id = ?", course.CourseID).Error)
	require.NotNil(t, got.CourseDeletedBy)
	assert.Equal(t, admin, *got.CourseDeletedBy)
	require.NotNil(t, got.CourseDeleteReason)
	assert.Equal(t, reason, *got.CourseDeleteReason)
	assert.False(t, got.CourseIsActive)

	// Deleting again is not found.
	err = svc.SoftDeleteCourse(context.Background(), course.CourseID, companyID, admin, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
