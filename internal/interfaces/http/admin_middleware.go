package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/pkg/logger"
)

// roleResolver es el contrato mínimo que necesita el middleware para resolver
// el rol. Lo implementa *usecase.UserUseCase; el uso de interfaz evita acoplar
// el middleware al caso de uso completo.
type roleResolver interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin devuelve un middleware Fiber que exige rol admin. Debe usarse
// DESPUÉS de AuthMiddleware (necesita LocalEmail).
//
// El rol se resuelve SIEMPRE contra la base de datos, nunca desde el token:
// un token robado o manipulado no puede acreditar privilegios, y una
// degradación de rol aplica en la siguiente petición sin esperar expiración.
//
// Comportamiento:
//   - cuenta inexistente o rol != admin → 403 Forbidden.
//   - fallo de infraestructura → 500 genérico (el detalle solo va al log).
//   - sin email en el contexto → 401 (el AuthMiddleware debería haberlo puesto).
func RequireAdmin(resolver roleResolver, log *logger.Logger, storeTimeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := GetEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: "email no encontrado en la sesión",
			})
		}

		ctx, cancel := storeCtx(c, storeTimeout)
		defer cancel()

		admin, err := resolver.IsAdmin(ctx, email)
		if err != nil {
			log.Error().Err(err).Str("email", email).Msg("resolver rol de admin")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "INTERNAL",
				Message: "no se pudo verificar el rol, intente más tarde",
			})
		}
		if !admin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere rol de administrador",
			})
		}
		return c.Next()
	}
}
