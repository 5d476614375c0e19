package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/internal/application/usecase"
	"github.com/jhoicas/nomina-api/internal/domain"
	"github.com/jhoicas/nomina-api/pkg/logger"
)

// UserHandler maneja el ciclo de vida de cuentas y sus proyecciones de rol.
type UserHandler struct {
	uc           *usecase.UserUseCase
	log          *logger.Logger
	storeTimeout time.Duration
}

// NewUserHandler construye el handler de cuentas.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger, storeTimeout time.Duration) *UserHandler {
	return &UserHandler{uc: uc, log: log, storeTimeout: storeTimeout}
}

// internalError registra el error real y responde un mensaje genérico:
// el detalle de infraestructura nunca llega al cliente.
func (h *UserHandler) internalError(c *fiber.Ctx, err error, op string) error {
	h.log.Error().Err(err).Str("op", op).Msg("fallo de infraestructura")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno, intente más tarde",
	})
}

// Register godoc
// @Summary      Registrar cuenta
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "email, perfil"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y name son requeridos"})
	}
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	user, err := h.uc.Register(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return h.internalError(c, err, "register_user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetByEmail godoc
// @Summary      Obtener cuenta por email
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "email"
// @Success      200    {object}  dto.UserResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/users/{email} [get]
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	user, err := h.uc.GetByEmail(ctx, c.Params("email"))
	if err != nil {
		return h.internalError(c, err, "get_user")
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(user)
}

// GetRole godoc
// @Summary      Proyección de rol; role vacío si el email no existe
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "email"
// @Success      200    {object}  dto.RoleResponse
// @Router       /api/users/role/{email} [get]
func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	role, err := h.uc.GetRole(ctx, c.Params("email"))
	if err != nil {
		return h.internalError(c, err, "get_role")
	}
	return c.JSON(dto.RoleResponse{Role: role})
}

// GetAdmin godoc
// @Summary      Proyección admin/no-admin; false si el email no existe
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "email"
// @Success      200    {object}  dto.AdminResponse
// @Router       /api/users/admin/{email} [get]
func (h *UserHandler) GetAdmin(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	admin, err := h.uc.IsAdmin(ctx, c.Params("email"))
	if err != nil {
		return h.internalError(c, err, "get_admin")
	}
	return c.JSON(dto.AdminResponse{Admin: admin})
}

// GetFired godoc
// @Summary      Proyección de despido; false si el email no existe
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "email"
// @Success      200    {object}  dto.FiredResponse
// @Router       /api/users/fired/{email} [get]
func (h *UserHandler) GetFired(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	fired, err := h.uc.IsFired(ctx, c.Params("email"))
	if err != nil {
		return h.internalError(c, err, "get_fired")
	}
	return c.JSON(dto.FiredResponse{Fired: fired})
}

// Update godoc
// @Summary      Actualización parcial de campos de perfil
// @Description  Responde modified=false cuando los campos enviados no cambian nada;
// @Description  404 solo cuando el email no existe. Role/isVerified/isFired no se tocan por esta vía.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path  string  true  "email"
// @Param        body   body  dto.UpdateUserRequest  true  "campos a actualizar"
// @Success      200    {object}  dto.UpdateUserResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/users/{email} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	out, err := h.uc.UpdateFields(ctx, c.Params("email"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se envió ningún campo actualizable"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrNoChange):
			// No-op distinguible de not-found: la cuenta existe, nada cambió.
			return c.JSON(dto.UpdateUserResponse{Modified: false})
		}
		return h.internalError(c, err, "update_user")
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Marcar cuenta como verificada (idempotente)
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "email"
// @Success      200    {object}  dto.UserResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/users/verify/{email} [patch]
func (h *UserHandler) Verify(c *fiber.Ctx) error {
	return h.setFlag(c, h.uc.SetVerified, "verify_user")
}

// Fire godoc
// @Summary      Marcar cuenta como despedida (idempotente, sin reversa)
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "email"
// @Success      200    {object}  dto.UserResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/users/fired/{email} [patch]
func (h *UserHandler) Fire(c *fiber.Ctx) error {
	return h.setFlag(c, h.uc.SetFired, "fire_user")
}

func (h *UserHandler) setFlag(c *fiber.Ctx, op func(ctx context.Context, email string) error, opName string) error {
	email := c.Params("email")
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	if err := op(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return h.internalError(c, err, opName)
	}
	user, err := h.uc.GetByEmail(ctx, email)
	if err != nil {
		return h.internalError(c, err, opName)
	}
	return c.JSON(user)
}

// ListVerified godoc
// @Summary      Listar cuentas verificadas (solo admin)
// @Tags         users
// @Produce      json
// @Param        limit   query  int  false  "límite"
// @Param        offset  query  int  false  "offset"
// @Success      200     {array}  dto.UserResponse
// @Router       /api/users/verified [get]
func (h *UserHandler) ListVerified(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	users, err := h.uc.ListVerified(ctx, page.Limit, page.Offset)
	if err != nil {
		return h.internalError(c, err, "list_verified")
	}
	return c.JSON(users)
}

// List godoc
// @Summary      Listar todas las cuentas (solo admin)
// @Tags         users
// @Produce      json
// @Param        limit   query  int  false  "límite"
// @Param        offset  query  int  false  "offset"
// @Success      200     {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	users, err := h.uc.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return h.internalError(c, err, "list_users")
	}
	return c.JSON(users)
}
