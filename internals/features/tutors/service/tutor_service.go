package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ems_backend/internals/configs"
	"ems_backend/internals/constants"
	dto "ems_backend/internals/features/tutors/dto"
	userModel "ems_backend/internals/features/users/model"
)

var (
	ErrNoLinkedUser = errors.New("employee has no linked user account; create the login first")
)

// Designation titles that mark an employee as tutor-like when no explicit
// role grant exists. Matched case-insensitively as substrings.
var tutorDesignations = []string{
	"tutor",
	"instructor",
	"professor",
	"teacher",
	"lecturer",
	"faculty",
}

var tutorRoleNames = []string{
	constants.RoleNameTutor,
	constants.RoleNameAcademicManager,
}

type TutorService struct {
	DB *gorm.DB
}

func NewTutorService(db *gorm.DB) *TutorService {
	return &TutorService{DB: db}
}

/* =========================================================
   Resolution
========================================================= */

// GetAllTutors returns tutor candidates for a tenant. With a course id the
// assignment union is authoritative. Without one, resolution is tiered:
// explicit role grants, then designation-title heuristics, and only when
// both tiers are empty a capped cold-start fallback of arbitrary active
// employees. The fallback keeps admin UIs usable during
// initial setup, at the cost of over-broad disclosure.
func (s *TutorService) GetAllTutors(ctx context.Context, companyID uuid.UUID, courseID *uuid.UUID) ([]userModel.EmployeeModel, error) {
	if courseID != nil {
		ids, err := ResolveAssignedTutorIDs(ctx, s.DB, companyID, *courseID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []userModel.EmployeeModel{}, nil
		}
		var emps []userModel.EmployeeModel
		err = s.DB.WithContext(ctx).
			Where("employee_company_id = ? AND employee_id IN ?", companyID, ids).
			Find(&emps).Error
		return emps, err
	}

	byRole, err := s.tutorsByRole(ctx, companyID)
	if err != nil {
		return nil, err
	}
	byTitle, err := s.tutorsByDesignation(ctx, companyID)
	if err != nil {
		return nil, err
	}

	merged := mergeEmployees(byRole, byTitle)
	if len(merged) > 0 {
		return merged, nil
	}

	// Cold-start fallback, capped by TUTOR_FALLBACK_LIMIT.
	var emps []userModel.EmployeeModel
	err = s.DB.WithContext(ctx).
		Where("employee_company_id = ? AND employee_is_active = ?", companyID, true).
		Limit(configs.TutorFallbackLimit).
		Find(&emps).Error
	return emps, err
}

func (s *TutorService) tutorsByRole(ctx context.Context, companyID uuid.UUID) ([]userModel.EmployeeModel, error) {
	var emps []userModel.EmployeeModel
	err := s.DB.WithContext(ctx).
		Table("employees").
		Select("employees.*").
		Joins("JOIN user_roles ur ON ur.user_role_user_id = employees.employee_user_id AND ur.user_role_company_id = employees.employee_company_id").
		Joins("JOIN roles r ON r.role_id = ur.user_role_role_id").
		Where("employees.employee_company_id = ? AND employees.employee_deleted_at IS NULL", companyID).
		Where("r.role_name IN ?", tutorRoleNames).
		Distinct().
		Find(&emps).Error
	return emps, err
}

func (s *TutorService) tutorsByDesignation(ctx context.Context, companyID uuid.UUID) ([]userModel.EmployeeModel, error) {
	titleCond := s.DB.Where("LOWER(employee_designation_title) LIKE ?", "%"+tutorDesignations[0]+"%")
	for _, t := range tutorDesignations[1:] {
		titleCond = titleCond.Or("LOWER(employee_designation_title) LIKE ?", "%"+t+"%")
	}

	var emps []userModel.EmployeeModel
	err := s.DB.WithContext(ctx).
		Where("employee_company_id = ? AND employee_is_active = ?", companyID, true).
		Where(titleCond).
		Find(&emps).Error
	return emps, err
}

func mergeEmployees(lists ...[]userModel.EmployeeModel) []userModel.EmployeeModel {
	seen := make(map[uuid.UUID]struct{})
	out := make([]userModel.EmployeeModel, 0)
	for _, list := range lists {
		for _, e := range list {
			if _, ok := seen[e.EmployeeID]; ok {
				continue
			}
			seen[e.EmployeeID] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

/* =========================================================
   Provisioning
========================================================= */

// CreateTutor provisions a tutor end to end: auth account (idempotent on
// email, rotating the password when the account already exists), a fresh
// employee record, and the TUTOR role grant.
func (s *TutorService) CreateTutor(ctx context.Context, companyID uuid.UUID, req dto.CreateTutorRequest) (*userModel.EmployeeModel, error) {
	firstName := strings.TrimSpace(req.FirstName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if firstName == "" {
		return nil, errors.New("first name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, errors.New("password is required")
	}

	var employee *userModel.EmployeeModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		// Idempotent on email: reuse an existing account instead of failing
		// on duplicates.
		var user userModel.UserModel
		err = tx.Where("user_email = ?", email).First(&user).Error
		switch {
		case err == nil:
			if err := tx.Model(&user).
				Update("user_password", string(hash)).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = userModel.UserModel{
				UserEmail:     email,
				UserPassword:  string(hash),
				UserFirstName: firstName,
				UserLastName:  req.LastName,
				UserIsActive:  true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		default:
			return err
		}

		// Always a fresh employee record, even when the login existed.
		emp := userModel.EmployeeModel{
			EmployeeCompanyID:        companyID,
			EmployeeBranchID:         req.BranchID,
			EmployeeUserID:           &user.UserID,
			EmployeeFirstName:        firstName,
			EmployeeLastName:         req.LastName,
			EmployeeEmail:            email,
			EmployeePhone:            req.Phone,
			EmployeeDesignationTitle: req.DesignationTitle,
			EmployeeIsActive:         true,
		}
		if err := tx.Create(&emp).Error; err != nil {
			return err
		}

		if err := upsertRoleGrant(tx, companyID, user.UserID, req.BranchID, constants.RoleNameTutor); err != nil {
			return err
		}

		employee = &emp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// AssignTutorRole grants TUTOR to an existing employee. Unlike CreateTutor
// there is no auto-creation here: a missing user link is a hard failure.
func (s *TutorService) AssignTutorRole(ctx context.Context, companyID, employeeID uuid.UUID) error {
	return EnsureTutorRole(ctx, s.DB, companyID, employeeID)
}

// EnsureTutorRole is the shared grant path, also used by the course write
// side effect.
func EnsureTutorRole(ctx context.Context, db *gorm.DB, companyID, employeeID uuid.UUID) error {
	var emp userModel.EmployeeModel
	if err := db.WithContext(ctx).
		Where("employee_id = ? AND employee_company_id = ?", employeeID, companyID).
		First(&emp).Error; err != nil {
		return err
	}
	if emp.EmployeeUserID == nil || *emp.EmployeeUserID == uuid.Nil {
		return ErrNoLinkedUser
	}
	return upsertRoleGrant(db.WithContext(ctx), companyID, *emp.EmployeeUserID, emp.EmployeeBranchID, constants.RoleNameTutor)
}

func upsertRoleGrant(tx *gorm.DB, companyID, userID uuid.UUID, branchID *uuid.UUID, roleName string) error {
	var role userModel.RoleModel
	if err := tx.Where("role_name = ?", roleName).
		FirstOrCreate(&role, userModel.RoleModel{RoleName: roleName}).Error; err != nil {
		return err
	}

	// Upsert keyed on (user, role, company, branch) so repeated grants are
	// no-ops instead of duplicates.
	grant := userModel.UserRoleModel{
		UserRoleUserID:    userID,
		UserRoleRoleID:    role.RoleID,
		UserRoleCompanyID: companyID,
		UserRoleBranchID:  branchID,
	}
	return tx.Where(userModel.UserRoleModel{
		UserRoleUserID:    userID,
		UserRoleRoleID:    role.RoleID,
		UserRoleCompanyID: companyID,
		UserRoleBranchID:  branchID,
	}).FirstOrCreate(&grant).Error
}

/* =========================================================
   Potential tutors
========================================================= */

// GetPotentialTutors is a set difference: employees with a user account
// minus those already holding TUTOR or ACADEMIC_MANAGER in this tenant,
// regardless of whether they also satisfy the designation heuristic.
func (s *TutorService) GetPotentialTutors(ctx context.Context, companyID uuid.UUID) ([]userModel.EmployeeModel, error) {
	var heldUserIDs []uuid.UUID
	if err := s.DB.WithContext(ctx).
		Table("user_roles").
		Joins("JOIN roles r ON r.role_id = user_roles.user_role_role_id").
		Where("user_roles.user_role_company_id = ?", companyID).
		Where("r.role_name IN ?", tutorRoleNames).
		Pluck("user_roles.user_role_user_id", &heldUserIDs).Error; err != nil {
		return nil, err
	}

	q := s.DB.WithContext(ctx).
		Where("employee_company_id = ? AND employee_is_active = ?", companyID, true).
		Where("employee_user_id IS NOT NULL")
	if len(heldUserIDs) > 0 {
		q = q.Where("employee_user_id NOT IN ?", heldUserIDs)
	}

	var emps []userModel.EmployeeModel
	if err := q.Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}
