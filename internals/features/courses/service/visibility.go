package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"ems_backend/internals/constants"
	dto "ems_backend/internals/features/courses/dto"
	model "ems_backend/internals/features/courses/model"
)

// Viewer is the read-time role context the derivation runs against.
// Visibility is never stored; it is recomputed on every fetch.
type Viewer struct {
	Role       string
	IsEnrolled bool
}

func (v Viewer) isStudent() bool {
	return v.Role == constants.RoleStudent
}

// staff viewers (tutor and every manager tier) see all materials unfiltered.
func (v Viewer) seesAllMaterials() bool {
	switch v.Role {
	case constants.RoleTutor, constants.RoleManager, constants.RoleAdmin, constants.RoleOwner:
		return true
	}
	return false
}

// BuildCourseTree applies the whole read-path post-processing: ordering,
// numbering, per-role material filtering, visibility derivation, student
// redaction and pruning. Pure; storage order of the inputs does not matter.
func BuildCourseTree(
	course model.CourseModel,
	modules []model.CourseModuleModel,
	lessons []model.LessonModel,
	materials []model.CourseMaterialModel,
	viewer Viewer,
) dto.CourseDetailResponse {
	lessonsByModule := make(map[uuid.UUID][]model.LessonModel)
	for _, l := range lessons {
		lessonsByModule[l.LessonCourseModuleID] = append(lessonsByModule[l.LessonCourseModuleID], l)
	}

	materialsByLesson := make(map[uuid.UUID][]model.CourseMaterialModel)
	materialsByModule := make(map[uuid.UUID][]model.CourseMaterialModel)
	var courseMaterials []model.CourseMaterialModel
	for _, m := range materials {
		switch {
		case m.CourseMaterialLessonID != nil:
			materialsByLesson[*m.CourseMaterialLessonID] = append(materialsByLesson[*m.CourseMaterialLessonID], m)
		case m.CourseMaterialCourseModuleID != nil:
			materialsByModule[*m.CourseMaterialCourseModuleID] = append(materialsByModule[*m.CourseMaterialCourseModuleID], m)
		default:
			courseMaterials = append(courseMaterials, m)
		}
	}

	sorted := make([]model.CourseModuleModel, len(modules))
	copy(sorted, modules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CourseModuleOrder < sorted[j].CourseModuleOrder
	})

	out := dto.CourseDetailResponse{
		CourseID:             course.CourseID,
		CourseCompanyID:      course.CourseCompanyID,
		CourseTitle:          course.CourseTitle,
		CourseDescription:    course.CourseDescription,
		CourseThumbnailURL:   course.CourseThumbnailURL,
		CourseTutorID:        course.CourseTutorID,
		CourseIsActive:       course.CourseIsActive,
		CourseApprovalStatus: course.CourseApprovalStatus,
		CourseCreatedAt:      course.CourseCreatedAt,
		IsEnrolled:           viewer.IsEnrolled,
		Modules:              []dto.ModuleResponse{},
		Materials:            filterMaterials(courseMaterials, viewer),
	}

	for i, mod := range sorted {
		moduleNumber := i + 1

		modResp := dto.ModuleResponse{
			CourseModuleID:       mod.CourseModuleID,
			CourseModuleTitle:    mod.CourseModuleTitle,
			CourseModuleOrder:    mod.CourseModuleOrder,
			CourseModuleIsActive: mod.CourseModuleIsActive,
			ModuleNumber:         moduleNumber,
			Visibility:           activeVisibility(mod.CourseModuleIsActive),
			Lessons:              []dto.LessonResponse{},
			Materials:            filterMaterials(materialsByModule[mod.CourseModuleID], viewer),
		}

		modLessons := make([]model.LessonModel, len(lessonsByModule[mod.CourseModuleID]))
		copy(modLessons, lessonsByModule[mod.CourseModuleID])
		sort.SliceStable(modLessons, func(a, b int) bool {
			return modLessons[a].LessonOrder < modLessons[b].LessonOrder
		})

		for j, l := range modLessons {
			lr := buildLesson(l, moduleNumber, j, viewer)
			lr.Materials = filterMaterials(materialsByLesson[l.LessonID], viewer)
			if viewer.isStudent() && lr.Visibility == constants.VisibilityPrivate {
				// unauthorized content is removed from the tree, not flagged
				continue
			}
			modResp.Lessons = append(modResp.Lessons, lr)
		}

		if viewer.isStudent() && modResp.Visibility == constants.VisibilityPrivate {
			continue
		}
		out.Modules = append(out.Modules, modResp)
	}

	return out
}

func buildLesson(l model.LessonModel, moduleNumber, lessonIndex int, viewer Viewer) dto.LessonResponse {
	lr := dto.LessonResponse{
		LessonID:             l.LessonID,
		LessonTitle:          l.LessonTitle,
		LessonOrder:          l.LessonOrder,
		LessonIsPreview:      l.LessonIsPreview,
		LessonIsActive:       l.LessonIsActive,
		LessonApprovalStatus: l.LessonApprovalStatus,
		LessonVideoURL:       l.LessonVideoURL,
		LessonContentBody:    l.LessonContentBody,
		LessonNumber:         fmt.Sprintf("%d.%d", moduleNumber, lessonIndex+1),
		Materials:            []dto.MaterialResponse{},
	}

	switch {
	case !l.LessonIsActive:
		lr.Visibility = constants.VisibilityPrivate
	case l.LessonIsPreview:
		lr.Visibility = constants.VisibilityPublic
	default:
		lr.Visibility = constants.VisibilityEnrolled
	}

	// Students never see unapproved content as public, preview flag or not.
	if viewer.isStudent() && l.LessonApprovalStatus != constants.ApprovalApproved {
		lr.Visibility = constants.VisibilityPrivate
	}

	// Lock + redact ENROLLED content for unenrolled students. The body is
	// stripped server-side, not merely flagged for the UI.
	if viewer.isStudent() && lr.Visibility == constants.VisibilityEnrolled && !viewer.IsEnrolled {
		lr.IsLocked = true
		lr.LessonVideoURL = nil
		lr.LessonContentBody = nil
	}

	return lr
}

func filterMaterials(mats []model.CourseMaterialModel, viewer Viewer) []dto.MaterialResponse {
	out := []dto.MaterialResponse{}
	for _, m := range mats {
		if !materialVisibleTo(m, viewer) {
			continue
		}
		out = append(out, dto.MaterialResponse{
			CourseMaterialID:             m.CourseMaterialID,
			CourseMaterialTitle:          m.CourseMaterialTitle,
			CourseMaterialFileURL:        m.CourseMaterialFileURL,
			CourseMaterialTargetAudience: m.CourseMaterialTargetAudience,
			CourseMaterialIsActive:       m.CourseMaterialIsActive,
			CourseMaterialApprovalStatus: m.CourseMaterialApprovalStatus,
			Visibility:                   activeVisibility(m.CourseMaterialIsActive),
		})
	}
	return out
}

func materialVisibleTo(m model.CourseMaterialModel, viewer Viewer) bool {
	if viewer.seesAllMaterials() {
		return true
	}
	if viewer.isStudent() {
		return m.CourseMaterialIsActive &&
			m.CourseMaterialApprovalStatus == constants.ApprovalApproved &&
			(m.CourseMaterialTargetAudience == constants.AudienceStudents ||
				m.CourseMaterialTargetAudience == constants.AudienceBoth)
	}
	return m.CourseMaterialIsActive
}

// activeVisibility is the two-valued derivation shared by modules and
// materials: neither has a preview concept, so PUBLIC is unreachable.
func activeVisibility(isActive bool) string {
	if isActive {
		return constants.VisibilityEnrolled
	}
	return constants.VisibilityPrivate
}
