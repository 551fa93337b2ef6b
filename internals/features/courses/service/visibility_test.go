package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ems_backend/internals/constants"
	model "ems_backend/internals/features/courses/model"
)

func strPtr(s string) *string { return &s }

func baseCourse() model.CourseModel {
	return model.CourseModel{
		CourseID:             uuid.New(),
		CourseCompanyID:      uuid.New(),
		CourseTitle:          "Distributed Systems",
		CourseIsActive:       true,
		CourseApprovalStatus: constants.ApprovalApproved,
	}
}

func makeModule(courseID uuid.UUID, order int, active bool) model.CourseModuleModel {
	return model.CourseModuleModel{
		CourseModuleID:       uuid.New(),
		CourseModuleCourseID: courseID,
		CourseModuleTitle:    "Module",
		CourseModuleOrder:    order,
		CourseModuleIsActive: active,
	}
}

func makeLesson(moduleID uuid.UUID, order int) model.LessonModel {
	return model.LessonModel{
		LessonID:             uuid.New(),
		LessonCourseModuleID: moduleID,
		LessonTitle:          "Lesson",
		LessonOrder:          order,
		LessonIsActive:       true,
		LessonApprovalStatus: constants.ApprovalApproved,
		LessonVideoURL:       strPtr("https://cdn.example.com/v.mp4"),
		LessonContentBody:    strPtr("body"),
	}
}

func TestModuleNumberingFollowsOrderNotStorage(t *testing.T) {
	course := baseCourse()
	second := makeModule(course.CourseID, 2, true)
	first := makeModule(course.CourseID, 1, true)

	// storage order is [2, 1]; numbering must follow module_order.
	out := BuildCourseTree(course, []model.CourseModuleModel{second, first}, nil, nil, Viewer{Role: constants.RoleManager})

	require.Len(t, out.Modules, 2)
	assert.Equal(t, first.CourseModuleID, out.Modules[0].CourseModuleID)
	assert.Equal(t, 1, out.Modules[0].ModuleNumber)
	assert.Equal(t, second.CourseModuleID, out.Modules[1].CourseModuleID)
	assert.Equal(t, 2, out.Modules[1].ModuleNumber)
}

func TestLessonNumberingIsModuleDotIndex(t *testing.T) {
	course := baseCourse()
	mod := makeModule(course.CourseID, 1, true)
	l2 := makeLesson(mod.CourseModuleID, 2)
	l1 := makeLesson(mod.CourseModuleID, 1)

	out := BuildCourseTree(course, []model.CourseModuleModel{mod}, []model.LessonModel{l2, l1}, nil, Viewer{Role: constants.RoleManager})

	require.Len(t, out.Modules, 1)
	require.Len(t, out.Modules[0].Lessons, 2)
	assert.Equal(t, l1.LessonID, out.Modules[0].Lessons[0].LessonID)
	assert.Equal(t, "1.1", out.Modules[0].Lessons[0].LessonNumber)
	assert.Equal(t, "1.2", out.Modules[0].Lessons[1].LessonNumber)
}

func TestUnapprovedPreviewNeverPublicForStudents(t *testing.T) {
	course := baseCourse()
	mod := makeModule(course.CourseID, 1, true)
	lesson := makeLesson(mod.CourseModuleID, 1)
	lesson.LessonIsPreview = true
	lesson.LessonApprovalStatus = constants.ApprovalPending

	// Staff still see it as PUBLIC.
	staff := BuildCourseTree(course, []model.CourseModuleModel{mod}, []model.LessonModel{lesson}, nil, Viewer{Role: constants.RoleTutor})
	require.Len(t, staff.Modules[0].Lessons, 1)
	assert.Equal(t, constants.VisibilityPublic, staff.Modules[0].Lessons[0].Visibility)

	// Students get the PRIVATE downgrade, and PRIVATE is pruned entirely.
	student := BuildCourseTree(course, []model.CourseModuleModel{mod}, []model.LessonModel{lesson}, nil, Viewer{Role: constants.RoleStudent, IsEnrolled: true})
	require.Len(t, student.Modules, 1)
	assert.Empty(t, student.Modules[0].Lessons)
}

func TestEnrolledContentLockedAndRedactedForUnenrolledStudent(t *testing.T) {
	course := baseCourse()
	mod := makeModule(course.CourseID, 1, true)
	lesson := makeLesson(mod.CourseModuleID, 1)

	out := BuildCourseTree(course, []model.CourseModuleModel{mod}, []model.LessonModel{lesson}, nil, Viewer{Role: constants.RoleStudent, IsEnrolled: false})

	require.Len(t, out.Modules, 1)
	require.Len(t, out.Modules[0].Lessons, 1)
	got := out.Modules[0].Lessons[0]
	assert.Equal(t, constants.VisibilityEnrolled, got.Visibility)
	assert.True(t, got.IsLocked)
	assert.Nil(t, got.LessonVideoURL)
	assert.Nil(t, got.LessonContentBody)

	// The same lesson unlocks once enrolled.
	enrolled := BuildCourseTree(course, []model.CourseModuleModel{mod}, []model.LessonModel{lesson}, nil, Viewer{Role: constants.RoleStudent, IsEnrolled: true})
	got = enrolled.Modules[0].Lessons[0]
	assert.False(t, got.IsLocked)
	require.NotNil(t, got.LessonVideoURL)
	require.NotNil(t, got.LessonContentBody)
}

func TestInactiveModulePrunedForStudentsOnly(t *testing.T) {
	course := baseCourse()
	hidden := makeModule(course.CourseID, 1, false)

	staff := BuildCourseTree(course, []model.CourseModuleModel{hidden}, nil, nil, Viewer{Role: constants.RoleManager})
	require.Len(t, staff.Modules, 1)
	assert.Equal(t, constants.VisibilityPrivate, staff.Modules[0].Visibility)

	student := BuildCourseTree(course, []model.CourseModuleModel{hidden}, nil, nil, Viewer{Role: constants.RoleStudent, IsEnrolled: true})
	assert.Empty(t, student.Modules)
}

func TestMaterialAudienceFilter(t *testing.T) {
	course := baseCourse()
	courseID := course.CourseID

	forStudents := model.CourseMaterialModel{
		CourseMaterialID:             uuid.New(),
		CourseMaterialCourseID:       &courseID,
		CourseMaterialTitle:          "Syllabus",
		CourseMaterialTargetAudience: constants.AudienceStudents,
		CourseMaterialIsActive:       true,
		CourseMaterialApprovalStatus: constants.ApprovalApproved,
	}
	forTutors := model.CourseMaterialModel{
		CourseMaterialID:             uuid.New(),
		CourseMaterialCourseID:       &courseID,
		CourseMaterialTitle:          "Answer key",
		CourseMaterialTargetAudience: constants.AudienceTutors,
		CourseMaterialIsActive:       true,
		CourseMaterialApprovalStatus: constants.ApprovalApproved,
	}
	pending := model.CourseMaterialModel{
		CourseMaterialID:             uuid.New(),
		CourseMaterialCourseID:       &courseID,
		CourseMaterialTitle:          "Draft handout",
		CourseMaterialTargetAudience: constants.AudienceBoth,
		CourseMaterialIsActive:       true,
		CourseMaterialApprovalStatus: constants.ApprovalPending,
	}
	mats := []model.CourseMaterialModel{forStudents, forTutors, pending}

	student := BuildCourseTree(course, nil, nil, mats, Viewer{Role: constants.RoleStudent, IsEnrolled: true})
	require.Len(t, student.Materials, 1)
	assert.Equal(t, "Syllabus", student.Materials[0].CourseMaterialTitle)

	tutor := BuildCourseTree(course, nil, nil, mats, Viewer{Role: constants.RoleTutor})
	assert.Len(t, tutor.Materials, 3)
}

func TestLessonMaterialsAttach(t *testing.T) {
	course := baseCourse()
	mod := makeModule(course.CourseID, 1, true)
	lesson := makeLesson(mod.CourseModuleID, 1)
	lessonID := lesson.LessonID

	mat := model.CourseMaterialModel{
		CourseMaterialID:             uuid.New(),
		CourseMaterialLessonID:       &lessonID,
		CourseMaterialTitle:          "Slides",
		CourseMaterialTargetAudience: constants.AudienceBoth,
		CourseMaterialIsActive:       true,
		CourseMaterialApprovalStatus: constants.ApprovalApproved,
	}

	out := BuildCourseTree(course, []model.CourseModuleModel{mod}, []model.LessonModel{lesson}, []model.CourseMaterialModel{mat}, Viewer{Role: constants.RoleStudent, IsEnrolled: true})
	require.Len(t, out.Modules[0].Lessons, 1)
	require.Len(t, out.Modules[0].Lessons[0].Materials, 1)
	assert.Equal(t, "Slides", out.Modules[0].Lessons[0].Materials[0].CourseMaterialTitle)
}
