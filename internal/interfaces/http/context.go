package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// storeCtx acota las operaciones contra la base de datos: una petición cuyo
// lookup exceda el timeout falla con error genérico en lugar de colgar al
// cliente. El contexto deriva del de la petición Fiber.
func storeCtx(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(c.Context(), timeout)
}
