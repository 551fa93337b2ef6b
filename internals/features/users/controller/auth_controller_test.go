package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ems_backend/internals/databases/testdb"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	app := fiber.New()
	ctl := NewAuthController(db)
	app.Post("/api/public/auth/register", ctl.Register)
	app.Post("/api/public/auth/login", ctl.Login)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (map[string]any, int) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed, resp.StatusCode
}

func TestRegisterEndpointValidatesPayload(t *testing.T) {
	app, _ := newAuthApp(t)

	body, status := postJSON(t, app, "/api/public/auth/register", fiber.Map{
		"company_id": uuid.New(),
		"first_name": "Grace",
		"email":      "not-an-email",
		"password":   "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	app, _ := newAuthApp(t)
	companyID := uuid.New()

	body, status := postJSON(t, app, "/api/public/auth/register", fiber.Map{
		"company_id": companyID,
		"first_name": "Grace",
		"email":      "grace@example.com",
		"password":   "correct-password",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	body, status = postJSON(t, app, "/api/public/auth/login", fiber.Map{
		"company_id": companyID,
		"email":      "grace@example.com",
		"password":   "correct-password",
	})
	require.Equal(t, fiber.StatusOK, status)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])
	assert.Equal(t, "student", data["role"])

	// Duplicate registration is a conflict, not a crash.
	body, status = postJSON(t, app, "/api/public/auth/register", fiber.Map{
		"company_id": companyID,
		"first_name": "Grace",
		"email":      "grace@example.com",
		"password":   "correct-password",
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error_code"])
}

func TestLoginEndpointRejectsBadPassword(t *testing.T) {
	app, _ := newAuthApp(t)
	companyID := uuid.New()

	_, status := postJSON(t, app, "/api/public/auth/register", fiber.Map{
		"company_id": companyID,
		"first_name": "Grace",
		"email":      "grace@example.com",
		"password":   "correct-password",
	})
	require.Equal(t, fiber.StatusCreated, status)

	body, status := postJSON(t, app, "/api/public/auth/login", fiber.Map{
		"company_id": companyID,
		"email":      "grace@example.com",
		"password":   "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body["message"])
}
