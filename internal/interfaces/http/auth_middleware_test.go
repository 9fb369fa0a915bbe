package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/ABShowcase/architectural-showcase-portal/internal/interfaces/http"
	pkgjwt "github.com/ABShowcase/architectural-showcase-portal/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "showcase-portal-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber app with an entrant route behind
// AuthMiddleware and an admin route behind AuthMiddleware + AdminMiddleware.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":  apphttp.GetUserID(c),
				"is_admin": apphttp.IsAdmin(c),
			})
		},
	)
	app.Get("/admin-only",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.AdminMiddleware(),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// tokenFor issues a JWT with the given admin flag.
func tokenFor(t *testing.T, isAdmin bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, isAdmin, testIssuer, testExpMin)
	require.NoError(t, err, "a valid JWT must be generated")
	return "Bearer " + tok
}

// doRequest issues a GET against the app and returns the response.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", tokenFor(t, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, false, body["is_admin"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecretRejected(t *testing.T) {
	tok, err := pkgjwt.Generate("some-other-secret", testUserID, false, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdminMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminMiddleware_AdminAllowed(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin-only", tokenFor(t, true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminMiddleware_EntrantBlocked(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin-only", tokenFor(t, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}
