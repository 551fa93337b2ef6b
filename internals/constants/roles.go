package constants

import "fmt"

// Session roles (value of the "role" claim in the access token).
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleManager = "manager"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

// Role grant names as stored in the roles table. The TUTOR grant is what the
// approval/course services key on; ACADEMIC_MANAGER counts as tutor-capable
// for resolution purposes.
const (
	RoleNameTutor           = "TUTOR"
	RoleNameAcademicManager = "ACADEMIC_MANAGER"
	RoleNameManager         = "MANAGER"
	RoleNameAdmin           = "ADMIN"
	RoleNameOwner           = "OWNER"
)

// Role error message templates
const (
	ErrOnlyTutorsCanAccess   = "Only tutors, managers, or admins may access %s."
	ErrOnlyManagersCanAccess = "Only managers or admins may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
	ErrOnlyOwnersCanAccess   = "Only the platform owner may access %s."
)

func RoleErrorTutor(feature string) string {
	return fmt.Sprintf(ErrOnlyTutorsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTutor,
		RoleManager,
		RoleAdmin,
		RoleOwner,
	}

	StaffRoles = []string{
		RoleTutor,
		RoleManager,
		RoleAdmin,
		RoleOwner,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
