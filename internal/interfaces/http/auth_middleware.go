package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/pkg/jwt"
)

// Locals key para el email autenticado en Fiber.
const LocalEmail = "email"

// AuthMiddleware valida la cookie de sesión y deja el email en c.Locals.
// Corta la cadena antes de cualquier handler:
//   - sin cookie → 401 (no hay credencial).
//   - cookie presente pero inválida o expirada → 403 (credencial rechazada).
//
// El token solo acredita identidad; el rol se resuelve aparte contra la base.
func AuthMiddleware(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(cookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: "se requiere la cookie de sesión",
			})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "sesión inválida o expirada",
			})
		}
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
