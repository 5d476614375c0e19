package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/nomina-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/nomina-api/pkg/jwt"
	"github.com/jhoicas/nomina-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testCookieName = "token"
	testIssuer     = "nomina-pro-test"

	testEmployeeEmail = "empleado@empresa.com"
	testAdminEmail    = "jefa@empresa.com"
)

// stubResolver resuelve el rol admin desde un mapa en memoria; si err está
// definido, simula una base de datos caída.
type stubResolver struct {
	admins map[string]bool
	err    error
}

func (s *stubResolver) IsAdmin(_ context.Context, email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.admins[email], nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// buildTestApp construye una app Fiber mínima con dos rutas:
//   - /me: solo AuthMiddleware, devuelve el email del contexto.
//   - /admin-only: AuthMiddleware + RequireAdmin.
func buildTestApp(resolver *stubResolver) *fiber.App {
	app := fiber.New()
	authGate := apphttp.AuthMiddleware(testJWTSecret, testCookieName)
	app.Get("/me", authGate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": apphttp.GetEmail(c)})
	})
	app.Get("/admin-only", authGate, apphttp.RequireAdmin(resolver, testLogger(), time.Second), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

// sessionCookie firma un token de sesión válido para el email dado.
func sessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, testIssuer)
	require.NoError(t, err, "debe generarse un token de sesión válido")
	return &http.Cookie{Name: testCookieName, Value: tok}
}

// doRequest lanza un GET a path con la cookie indicada (nil = sin cookie).
func doRequest(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — puerta de autenticación por cookie
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin cookie → 401. La credencial no existe.
func TestAuthMiddleware_SinCookie_Retorna401(t *testing.T) {
	app := buildTestApp(&stubResolver{})
	resp := doRequest(t, app, "/me", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHENTICATED")
}

// Caso 2: cookie con basura → 403. La credencial existe pero fue rechazada.
func TestAuthMiddleware_CookieInvalida_Retorna403(t *testing.T) {
	app := buildTestApp(&stubResolver{})
	resp := doRequest(t, app, "/me", &http.Cookie{Name: testCookieName, Value: "token.invalido.aqui"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"cookie presente pero inválida debe ser 403, no 401")
}

// Caso 3: cookie firmada con OTRO secret → 403.
func TestAuthMiddleware_OtroSecret_Retorna403(t *testing.T) {
	app := buildTestApp(&stubResolver{})
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", testEmployeeEmail, testIssuer)
	require.NoError(t, err)

	resp := doRequest(t, app, "/me", &http.Cookie{Name: testCookieName, Value: tok})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 4: cookie válida → 200 y el email queda disponible en el contexto.
func TestAuthMiddleware_CookieValida_ExtraeEmail(t *testing.T) {
	app := buildTestApp(&stubResolver{})
	resp := doRequest(t, app, "/me", sessionCookie(t, testEmployeeEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), testEmployeeEmail,
		"el handler debe ver el email autenticado vía GetEmail")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin — el rol se resuelve contra la base, nunca desde el token
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: empleado con sesión válida pero sin rol admin → 403.
// El token no dice nada del rol: lo decide el resolver.
func TestRequireAdmin_EmpleadoBloqueado(t *testing.T) {
	app := buildTestApp(&stubResolver{admins: map[string]bool{testAdminEmail: true}})
	resp := doRequest(t, app, "/admin-only", sessionCookie(t, testEmployeeEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Caso 6: admin según la base → 200.
func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildTestApp(&stubResolver{admins: map[string]bool{testAdminEmail: true}})
	resp := doRequest(t, app, "/admin-only", sessionCookie(t, testAdminEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 7: la promoción a admin aplica SIN reemitir el token. El mismo token que
// ayer fue rechazado pasa hoy, porque el rol vive en la base y no en el claim.
func TestRequireAdmin_PromocionAplicaSinReemitirToken(t *testing.T) {
	resolver := &stubResolver{admins: map[string]bool{}}
	app := buildTestApp(resolver)
	cookie := sessionCookie(t, testEmployeeEmail)

	resp := doRequest(t, app, "/admin-only", cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resolver.admins[testEmployeeEmail] = true

	resp = doRequest(t, app, "/admin-only", cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la promoción debe surtir efecto con el mismo token de sesión")
}

// Caso 8: cuenta desconocida para el resolver → 403, no 500. La proyección de
// rol degrada a "no admin" para cuentas inexistentes.
func TestRequireAdmin_CuentaDesconocida_Retorna403(t *testing.T) {
	app := buildTestApp(&stubResolver{admins: map[string]bool{}})
	resp := doRequest(t, app, "/admin-only", sessionCookie(t, "nadie@empresa.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 9: base de datos caída → 500 genérico, sin filtrar el detalle.
func TestRequireAdmin_FalloDeInfraestructura_Retorna500(t *testing.T) {
	app := buildTestApp(&stubResolver{err: errors.New("conexión rechazada")})
	resp := doRequest(t, app, "/admin-only", sessionCookie(t, testAdminEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "conexión rechazada",
		"el detalle de infraestructura solo va al log, nunca al cliente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Expiración — la sesión dura exactamente una hora
// ──────────────────────────────────────────────────────────────────────────────

// Caso 10: token vencido → 403. Para la puerta, vencimiento y firma rota son
// la misma respuesta; la distinción solo existe a nivel de jwt.Parse.
func TestAuthMiddleware_TokenExpirado_Retorna403(t *testing.T) {
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"email": testEmployeeEmail,
		"iss":   testIssuer,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	app := buildTestApp(&stubResolver{})
	resp := doRequest(t, app, "/me", &http.Cookie{Name: testCookieName, Value: tok})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
