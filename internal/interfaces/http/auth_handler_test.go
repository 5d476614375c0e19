package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nomina-api/internal/application/auth"
	apphttp "github.com/jhoicas/nomina-api/internal/interfaces/http"
	"github.com/jhoicas/nomina-api/pkg/config"
	pkgjwt "github.com/jhoicas/nomina-api/pkg/jwt"
)

func buildSessionApp(cookie config.CookieConfig) *fiber.App {
	uc := auth.NewSessionUseCase(auth.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer})
	h := apphttp.NewSessionHandler(uc, cookie)
	app := fiber.New()
	app.Post("/api/jwt", h.IssueToken)
	app.Post("/api/logout", h.Logout)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/jwt — emisión de la cookie de sesión
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: la cookie emitida contiene un token verificable con el email pedido.
func TestIssueToken_EmiteCookieVerificable(t *testing.T) {
	app := buildSessionApp(config.CookieForEnv("development"))
	resp := postJSON(t, app, "/api/jwt", `{"email":"empleado@empresa.com"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	ck := findCookie(resp, "token")
	require.NotNil(t, ck, "la respuesta debe fijar la cookie de sesión")
	assert.True(t, ck.HttpOnly, "la cookie jamás debe ser legible por JavaScript")

	email, err := pkgjwt.Parse(testJWTSecret, ck.Value)
	require.NoError(t, err)
	assert.Equal(t, "empleado@empresa.com", email)
}

// Caso 2: atributos según entorno. En producción el frontend vive en otro
// dominio: SameSite=None exige Secure.
func TestIssueToken_AtributosDeCookiePorEntorno(t *testing.T) {
	app := buildSessionApp(config.CookieForEnv("production"))
	resp := postJSON(t, app, "/api/jwt", `{"email":"empleado@empresa.com"}`)
	defer resp.Body.Close()

	ck := findCookie(resp, "token")
	require.NotNil(t, ck)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)
}

// Caso 3: sin email → 400.
func TestIssueToken_SinEmail_Retorna400(t *testing.T) {
	app := buildSessionApp(config.CookieForEnv("development"))
	resp := postJSON(t, app, "/api/jwt", `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/logout — revocación borrando la cookie
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_BorraLaCookie(t *testing.T) {
	app := buildSessionApp(config.CookieForEnv("development"))
	resp := postJSON(t, app, "/api/logout", ``)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	ck := findCookie(resp, "token")
	require.NotNil(t, ck, "logout debe reescribir la cookie")
	assert.Empty(t, ck.Value)
	assert.True(t, ck.Expires.Before(time.Now()),
		"la cookie debe quedar expirada para que el navegador la descarte")
}
