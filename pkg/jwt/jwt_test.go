package jwt_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/nomina-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testEmail  = "empleado@empresa.com"
	testIssuer = "nomina-pro-test"
)

// signWithClaims firma un token HS256 arbitrario; permite fabricar tokens
// vencidos o sin claim email, cosa que Generate nunca produce.
func signWithClaims(t *testing.T, secret string, claims jwtlib.MapClaims) string {
	t.Helper()
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Generate + Parse
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: ida y vuelta — el email firmado es el email recuperado.
func TestJWT_GenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email, "el email del claim debe sobrevivir el round trip")
}

// Caso 2: secret vacío — emisión y verificación rechazadas.
func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testEmail, testIssuer)
	assert.Error(t, err, "no se debe firmar con secret vacío")

	_, err = pkgjwt.Parse("", "cualquier.token.aqui")
	assert.Error(t, err, "no se debe verificar con secret vacío")
}

// Caso 3: secret incorrecto → ErrInvalid, nunca ErrExpired.
func TestJWT_SecretIncorrecto_RetornaErrInvalid(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid,
		"firma con otro secret debe reportarse como token inválido")
}

// Caso 4: token vencido → ErrExpired, distinguible de la firma rota.
func TestJWT_TokenExpirado_RetornaErrExpired(t *testing.T) {
	tok := signWithClaims(t, testSecret, jwtlib.MapClaims{
		"email": testEmail,
		"iss":   testIssuer,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})

	_, err := pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired,
		"el vencimiento natural debe distinguirse de una firma inválida")
}

// Caso 5: token bien firmado pero sin claim email → ErrInvalid.
// La identidad ES el email; un token sin él no acredita a nadie.
func TestJWT_SinClaimEmail_RetornaErrInvalid(t *testing.T) {
	tok := signWithClaims(t, testSecret, jwtlib.MapClaims{
		"iss": testIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid)
}

// Caso 6: basura sintáctica → ErrInvalid.
func TestJWT_TokenMalformado_RetornaErrInvalid(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid)
}

// Caso 7: algoritmo none firmado "a mano" → rechazado por el filtro de método.
func TestJWT_AlgoritmoNone_RetornaErrInvalid(t *testing.T) {
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{
		"email": testEmail,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid,
		"un token sin firma jamás debe pasar la verificación")
}
