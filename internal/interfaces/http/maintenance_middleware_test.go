package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/softshop-api/internal/interfaces/http"
)

type fakeMaintenanceChecker struct{ on bool }

func (f *fakeMaintenanceChecker) MaintenanceMode() bool { return f.on }

func buildMaintenanceApp(checker *fakeMaintenanceChecker) *fiber.App {
	app := fiber.New()
	group := app.Group("/", apphttp.AuthMiddleware(testJWTSecret), apphttp.MaintenanceGate(checker))
	ok := func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) }
	group.Get("/things", ok)
	group.Post("/things", ok)
	return app
}

func doMaintenanceRequest(t *testing.T, app *fiber.App, method, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, "/things", nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Con mantenimiento activo, los escritores no-admin reciben 503.
func TestMaintenanceGate_BloqueaEscrituraDeUser(t *testing.T) {
	app := buildMaintenanceApp(&fakeMaintenanceChecker{on: true})
	resp := doMaintenanceRequest(t, app, http.MethodPost, "user")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

// Las lecturas siguen disponibles durante el mantenimiento.
func TestMaintenanceGate_PermiteLecturaDeUser(t *testing.T) {
	app := buildMaintenanceApp(&fakeMaintenanceChecker{on: true})
	resp := doMaintenanceRequest(t, app, http.MethodGet, "user")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El admin opera normalmente aun en mantenimiento.
func TestMaintenanceGate_PermiteEscrituraDeAdmin(t *testing.T) {
	app := buildMaintenanceApp(&fakeMaintenanceChecker{on: true})
	resp := doMaintenanceRequest(t, app, http.MethodPost, "admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Sin mantenimiento todo pasa.
func TestMaintenanceGate_ApagadoNoInterfiere(t *testing.T) {
	app := buildMaintenanceApp(&fakeMaintenanceChecker{on: false})
	resp := doMaintenanceRequest(t, app, http.MethodPost, "user")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
