package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID    = "user_id"
	LocCompanyID = "company_id"
	LocBranchID  = "branch_id"
	LocUserRole  = "user_role"
)

func uuidFromLocals(c *fiber.Ctx, key, notLoggedIn, invalid string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, notLoggedIn)
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, notLoggedIn)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, notLoggedIn)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, invalid)
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, invalid)
	}
}

// GetUserIDFromToken reads user_id from c.Locals.
// 401 when not logged in, 400 when the value is malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID, "User is not logged in", "User ID in token is invalid")
}

// GetCompanyIDFromToken reads the tenant scope from c.Locals. Every query in
// the EMS features takes this value explicitly; nothing derives tenant
// identity on its own.
func GetCompanyIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocCompanyID, "Company scope missing from session", "Company ID in token is invalid")
}

// GetUserRoleFromToken reads the session role ("" when absent).
func GetUserRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}
