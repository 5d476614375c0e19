package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nomina-api/internal/application/auth"
	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/pkg/config"
)

// SessionHandler emite y revoca la cookie de sesión.
type SessionHandler struct {
	uc     *auth.SessionUseCase
	cookie config.CookieConfig
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(uc *auth.SessionUseCase, cookie config.CookieConfig) *SessionHandler {
	return &SessionHandler{uc: uc, cookie: cookie}
}

// IssueToken godoc
// @Summary      Emitir cookie de sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SessionRequest  true  "email"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/jwt [post]
func (h *SessionHandler) IssueToken(c *fiber.Ctx) error {
	var in dto.SessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	out, err := h.uc.Issue(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo emitir la sesión"})
	}
	// La cookie expira junto con el token: 1 hora.
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    out.Token,
		Expires:  time.Now().Add(time.Hour),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (borra la cookie)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LogoutResponse
// @Router       /api/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	// Revocación = borrar la cookie. El token sigue siendo criptográficamente
	// válido hasta su expiración natural; no hay blacklist en el servidor.
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
	return c.JSON(dto.LogoutResponse{Success: true})
}
