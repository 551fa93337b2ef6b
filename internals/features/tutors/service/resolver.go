package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The course↔tutor assignment lives in two places: the course_tutors junction
// and the legacy course_tutor_id column on courses. The authoritative
// assignment set is the deduplicated union of both; every call site resolves
// through here instead of repeating the union.

// ResolveAssignedCourseIDs returns every course the employee is assigned to
// within the tenant, junction and legacy column merged.
func ResolveAssignedCourseIDs(ctx context.Context, db *gorm.DB, companyID, employeeID uuid.UUID) ([]uuid.UUID, error) {
	var junctionIDs []uuid.UUID
	if err := db.WithContext(ctx).
		Table("course_tutors").
		Where("course_tutor_company_id = ? AND course_tutor_employee_id = ?", companyID, employeeID).
		Pluck("course_tutor_course_id", &junctionIDs).Error; err != nil {
		return nil, err
	}

	var legacyIDs []uuid.UUID
	if err := db.WithContext(ctx).
		Table("courses").
		Where("course_company_id = ? AND course_tutor_id = ? AND course_deleted_at IS NULL", companyID, employeeID).
		Pluck("course_id", &legacyIDs).Error; err != nil {
		return nil, err
	}

	return dedupeUUIDs(junctionIDs, legacyIDs), nil
}

// ResolveAssignedTutorIDs returns every employee assigned to the course,
// union of both representations.
func ResolveAssignedTutorIDs(ctx context.Context, db *gorm.DB, companyID, courseID uuid.UUID) ([]uuid.UUID, error) {
	var junctionIDs []uuid.UUID
	if err := db.WithContext(ctx).
		Table("course_tutors").
		Where("course_tutor_company_id = ? AND course_tutor_course_id = ?", companyID, courseID).
		Pluck("course_tutor_employee_id", &junctionIDs).Error; err != nil {
		return nil, err
	}

	var legacyIDs []uuid.UUID
	if err := db.WithContext(ctx).
		Table("courses").
		Where("course_company_id = ? AND course_id = ? AND course_tutor_id IS NOT NULL AND course_deleted_at IS NULL", companyID, courseID).
		Pluck("course_tutor_id", &legacyIDs).Error; err != nil {
		return nil, err
	}

	return dedupeUUIDs(junctionIDs, legacyIDs), nil
}

// IsTutorAssigned reports whether the employee appears in either
// representation for the course.
func IsTutorAssigned(ctx context.Context, db *gorm.DB, companyID, courseID, employeeID uuid.UUID) (bool, error) {
	ids, err := ResolveAssignedTutorIDs(ctx, db, companyID, courseID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func dedupeUUIDs(lists ...[]uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	out := make([]uuid.UUID, 0)
	for _, list := range lists {
		for _, id := range list {
			if id == uuid.Nil {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
