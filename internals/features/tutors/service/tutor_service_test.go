package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ems_backend/internals/configs"
	"ems_backend/internals/constants"
	"ems_backend/internals/databases/testdb"
	courseModel "ems_backend/internals/features/courses/model"
	dto "ems_backend/internals/features/tutors/dto"
	userModel "ems_backend/internals/features/users/model"
)

func seedEmployee(t *testing.T, db *gorm.DB, companyID uuid.UUID, name string, userID *uuid.UUID, title *string) userModel.EmployeeModel {
	t.Helper()
	emp := userModel.EmployeeModel{
		EmployeeCompanyID:        companyID,
		EmployeeUserID:           userID,
		EmployeeFirstName:        name,
		EmployeeEmail:            name + "@example.com",
		EmployeeDesignationTitle: title,
		EmployeeIsActive:         true,
	}
	require.NoError(t, db.Create(&emp).Error)
	return emp
}

func seedUser(t *testing.T, db *gorm.DB, email string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserEmail:     email,
		UserPassword:  "x",
		UserFirstName: "Seed",
		UserIsActive:  true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func grantTutor(t *testing.T, db *gorm.DB, companyID, userID uuid.UUID) {
	t.Helper()
	require.NoError(t, upsertRoleGrant(db, companyID, userID, nil, constants.RoleNameTutor))
}

func TestResolveAssignedCourseIDsUnionsAndDedupes(t *testing.T) {
	db := testdb.Open(t)
	companyID := uuid.New()
	employeeID := uuid.New()

	both := courseModel.CourseModel{
		CourseCompanyID:      companyID,
		CourseTitle:          "Both representations",
		CourseTutorID:        &employeeID,
		CourseIsActive:       true,
		CourseApprovalStatus: constants.ApprovalApproved,
	}
	require.NoError(t, db.Create(&both).Error)
	require.NoError(t, db.Create(&courseModel.CourseTutorModel{
		CourseTutorCourseID:   both.CourseID,
		CourseTutorEmployeeID: employeeID,
		CourseTutorCompanyID:  companyID,
	}).Error)

	junctionOnly := courseModel.CourseModel{
		CourseCompanyID:      companyID,
		CourseTitle:          "Junction only",
		CourseIsActive:       true,
		CourseApprovalStatus: constants.ApprovalApproved,
	}
	require.NoError(t, db.Create(&junctionOnly).Error)
	require.NoError(t, db.Create(&courseModel.CourseTutorModel{
		CourseTutorCourseID:   junctionOnly.CourseID,
		CourseTutorEmployeeID: employeeID,
		CourseTutorCompanyID:  companyID,
	}).Error)

	ids, err := ResolveAssignedCourseIDs(context.Background(), db, companyID, employeeID)
	require.NoError(t, err)
	// The course present in both representations appears once.
	assert.Len(t, ids, 2)

	assigned, err := IsTutorAssigned(context.Background(), db, companyID, both.CourseID, employeeID)
	require.NoError(t, err)
	assert.True(t, assigned)

	assigned, err = IsTutorAssigned(context.Background(), db, companyID, both.CourseID, uuid.New())
	require.NoError(t, err)
	assert.False(t, assigned)
}

func TestGetAllTutorsByCourseUsesAssignmentUnion(t *testing.T) {
	db := testdb.Open(t)
	svc := NewTutorService(db)
	companyID := uuid.New()

	legacyEmp := seedEmployee(t, db, companyID, "legacy", nil, nil)
	junctionEmp := seedEmployee(t, db, companyID, "junction", nil, nil)
	seedEmployee(t, db, companyID, "bystander", nil, nil)

	course := courseModel.CourseModel{
		CourseCompanyID:      companyID,
		CourseTitle:          "C",
		CourseTutorID:        &legacyEmp.EmployeeID,
		CourseIsActive:       true,
		CourseApprovalStatus: constants.ApprovalApproved,
	}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&courseModel.CourseTutorModel{
		CourseTutorCourseID:   course.CourseID,
		CourseTutorEmployeeID: junctionEmp.EmployeeID,
		CourseTutorCompanyID:  companyID,
	}).Error)

	got, err := svc.GetAllTutors(context.Background(), companyID, &course.CourseID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetAllTutorsTiersRolesThenDesignation(t *testing.T) {
	db := testdb.Open(t)
	svc := NewTutorService(db)
	companyID := uuid.New()

	granted := seedUser(t, db, "granted@example.com")
	byRole := seedEmployee(t, db, companyID, "byrole", &granted.UserID, nil)
	grantTutor(t, db, companyID, granted.UserID)

	title := "Senior Instructor"
	byTitle := seedEmployee(t, db, companyID, "bytitle", nil, &title)

	plain := "Accountant"
	seedEmployee(t, db, companyID, "plain", nil, &plain)

	got, err := svc.GetAllTutors(context.Background(), companyID, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := map[uuid.UUID]bool{got[0].EmployeeID: true, got[1].EmployeeID: true}
	assert.True(t, ids[byRole.EmployeeID])
	assert.True(t, ids[byTitle.EmployeeID])
}

func TestGetAllTutorsColdStartFallbackIsCapped(t *testing.T) {
	db := testdb.Open(t)
	svc := NewTutorService(db)
	companyID := uuid.New()

	old := configs.TutorFallbackLimit
	configs.TutorFallbackLimit = 3
	defer func() { configs.TutorFallbackLimit = old }()

	// No grants, no tutor-like titles anywhere.
	title := "Clerk"
	for i := 0; i < 5; i++ {
		seedEmployee(t, db, companyID, string(rune('a'+i)), nil, &title)
	}

	got, err := svc.GetAllTutors(context.Background(), companyID, nil)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestCreateTutorReusesExistingAccount(t *testing.T) {
	db := testdb.Open(t)
	svc := NewTutorService(db)
	companyID := uuid.New()

	title := "Tutor"
	req := dto.CreateTutorRequest{
		FirstName:        "Ada",
		Email:            "Ada@Example.com",
		Password:         "first-password",
		DesignationTitle: &title,
	}
	first, err := svc.CreateTutor(context.Background(), companyID, req)
	require.NoError(t, err)
	require.NotNil(t, first.EmployeeUserID)

	req.Password = "rotated-password"
	second, err := svc.CreateTutor(context.Background(), companyID, req)
	require.NoError(t, err)

	// Same login account, distinct employee rows.
	assert.Equal(t, *first.EmployeeUserID, *second.EmployeeUserID)
	assert.NotEqual(t, first.EmployeeID, second.EmployeeID)

	var userCount int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Where("user_email = ?", "ada@example.com").Count(&userCount).Error)
	assert.EqualValues(t, 1, userCount)

	// Password rotated on the second provisioning.
	var user userModel.UserModel
	require.NoError(t, db.First(&user, "user_email = ?", "ada@example.com").Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte("rotated-password")))

	// The grant is a single row despite two provisioning passes.
	var grantCount int64
	require.NoError(t, db.Model(&userModel.UserRoleModel{}).
		Where("user_role_user_id = ? AND user_role_company_id = ?", *first.EmployeeUserID, companyID).
		Count(&grantCount).Error)
	assert.EqualValues(t, 1, grantCount)
}

func TestAssignTutorRoleRequiresLinkedUser(t *testing.T) {
	db := testdb.Open(t)
	svc := NewTutorService(db)
	companyID := uuid.New()

	unlinked := seedEmployee(t, db, companyID, "unlinked", nil, nil)
	err := svc.AssignTutorRole(context.Background(), companyID, unlinked.EmployeeID)
	assert.ErrorIs(t, err, ErrNoLinkedUser)

	err = svc.AssignTutorRole(context.Background(), companyID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	user := seedUser(t, db, "linked@example.com")
	linked := seedEmployee(t, db, companyID, "linked", &user.UserID, nil)
	require.NoError(t, svc.AssignTutorRole(context.Background(), companyID, linked.EmployeeID))

	// Re-assign is an idempotent no-op.
	require.NoError(t, svc.AssignTutorRole(context.Background(), companyID, linked.EmployeeID))
}

func TestGetPotentialTutorsExcludesGrantHolders(t *testing.T) {
	db := testdb.Open(t)
	svc := NewTutorService(db)
	companyID := uuid.New()

	holderUser := seedUser(t, db, "holder@example.com")
	// Holds the grant AND matches the designation heuristic; still excluded.
	title := "Math Teacher"
	seedEmployee(t, db, companyID, "holder", &holderUser.UserID, &title)
	grantTutor(t, db, companyID, holderUser.UserID)

	candidateUser := seedUser(t, db, "candidate@example.com")
	candidate := seedEmployee(t, db, companyID, "candidate", &candidateUser.UserID, nil)

	seedEmployee(t, db, companyID, "no-login", nil, nil)

	got, err := svc.GetPotentialTutors(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, candidate.EmployeeID, got[0].EmployeeID)
}
