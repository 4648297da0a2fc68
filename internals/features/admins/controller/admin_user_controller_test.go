package controller

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gradus_backend/internals/constants"
	authmw "gradus_backend/internals/middlewares/auth"
)

const (
	testActorID  = "6f1b2a40-0000-4000-8000-000000000001"
	testTargetID = "6f1b2a40-0000-4000-8000-000000000002"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

// newAdminApp wires the controller behind a stub that hydrates the same
// locals AdminAuth would.
func newAdminApp(db *gorm.DB, actorRole constants.AdminRole) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(authmw.LocAdminID, testActorID)
		c.Locals(authmw.LocAdminRole, actorRole)
		return c.Next()
	})
	ctrl := NewAdminUserController(db)
	app.Put("/admin-users/:id", ctrl.Update)
	app.Delete("/admin-users/:id", ctrl.Delete)
	return app
}

func adminTargetRows(role string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"admin_user_id", "admin_user_name", "admin_user_email",
		"admin_user_password", "admin_user_role", "admin_user_status",
		"created_at", "updated_at",
	}).AddRow(testTargetID, "Target Admin", "target@gradus.in",
		"$2a$10$hash", role, "active", now, now)
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestUpdateRejectsSelfModification(t *testing.T) {
	// the guard fires before any query, whatever the actor's role
	for _, role := range constants.AllRoles {
		app := newAdminApp(nil, role)

		resp, err := app.Test(jsonRequest(http.MethodPut,
			"/admin-users/"+testActorID, `{"status":"inactive"}`))
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "role %s", role)
	}
}

func TestDeleteRejectsSelf(t *testing.T) {
	app := newAdminApp(nil, constants.RoleProgrammerAdmin)

	resp, err := app.Test(jsonRequest(http.MethodDelete,
		"/admin-users/"+testActorID, ""))
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateAdminCannotTouchProgrammerAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "admin_users"`).
		WillReturnRows(adminTargetRows(string(constants.RoleProgrammerAdmin)))

	app := newAdminApp(db, constants.RoleAdmin)
	resp, err := app.Test(jsonRequest(http.MethodPut,
		"/admin-users/"+testTargetID, `{"status":"inactive"}`))
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoleChangeNeedsProgrammerAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "admin_users"`).
		WillReturnRows(adminTargetRows(string(constants.RoleSEO)))

	app := newAdminApp(db, constants.RoleAdmin)
	resp, err := app.Test(jsonRequest(http.MethodPut,
		"/admin-users/"+testTargetID, `{"role":"admin"}`))
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNoopStatusWritesNothing(t *testing.T) {
	// status already "active": success without an UPDATE statement
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "admin_users"`).
		WillReturnRows(adminTargetRows(string(constants.RoleSEO)))

	app := newAdminApp(db, constants.RoleAdmin)
	resp, err := app.Test(jsonRequest(http.MethodPut,
		"/admin-users/"+testTargetID, `{"status":"active"}`))
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
