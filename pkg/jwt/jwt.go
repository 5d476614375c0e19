package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Las sesiones expiran exactamente una hora después de emitidas; no hay refresh.
const sessionTTL = time.Hour

// Errores de verificación. ErrExpired distingue el vencimiento natural de una
// firma inválida; ambos invalidan la sesión pero se auditan distinto.
var (
	ErrExpired = errors.New("jwt: token expirado")
	ErrInvalid = errors.New("jwt: token inválido")
)

// Claims incluye los claims estándar JWT más el email del usuario.
// El email es el ÚNICO claim propio: el rol nunca viaja en el token, siempre
// se resuelve contra la base de datos en cada petición.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Generate genera un token JWT HS256 firmado con expiración de 1 hora.
func Generate(secret, email, issuer string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el email.
// Retorna ErrExpired si el token venció y ErrInvalid para cualquier otro fallo
// (firma incorrecta, algoritmo inesperado, claims malformados).
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", ErrInvalid
	}
	return claims.Email, nil
}
