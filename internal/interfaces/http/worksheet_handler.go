package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/internal/application/usecase"
	"github.com/jhoicas/nomina-api/internal/domain"
	"github.com/jhoicas/nomina-api/pkg/logger"
)

// WorksheetHandler maneja las entradas de trabajo de los empleados.
type WorksheetHandler struct {
	uc           *usecase.WorksheetUseCase
	resolver     roleResolver
	log          *logger.Logger
	storeTimeout time.Duration
}

// NewWorksheetHandler construye el handler de entradas de trabajo.
func NewWorksheetHandler(uc *usecase.WorksheetUseCase, resolver roleResolver, log *logger.Logger, storeTimeout time.Duration) *WorksheetHandler {
	return &WorksheetHandler{uc: uc, resolver: resolver, log: log, storeTimeout: storeTimeout}
}

// Create godoc
// @Summary      Registrar una entrada de trabajo (el dueño es la sesión)
// @Tags         worksheets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorksheetRequest  true  "task, hours, date"
// @Success      201   {object}  dto.WorksheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/worksheets [post]
func (h *WorksheetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorksheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	out, err := h.uc.Create(ctx, GetEmail(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "task y hours > 0 son requeridos"})
		}
		h.log.Error().Err(err).Msg("registrar entrada de trabajo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByEmail godoc
// @Summary      Listar entradas de un empleado (dueño o admin)
// @Tags         worksheets
// @Produce      json
// @Param        email   path   string  true   "email"
// @Param        limit   query  int     false  "límite"
// @Param        offset  query  int     false  "offset"
// @Success      200     {array}  dto.WorksheetResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/worksheets/{email} [get]
func (h *WorksheetHandler) ListByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if ok, err := h.ownerOrAdmin(c, email); !ok {
		return err
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	list, err := h.uc.ListByEmail(ctx, email, page.Limit, page.Offset)
	if err != nil {
		h.log.Error().Err(err).Msg("listar entradas de trabajo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
	return c.JSON(list)
}

// List godoc
// @Summary      Listar todas las entradas (solo admin)
// @Tags         worksheets
// @Produce      json
// @Param        limit   query  int  false  "límite"
// @Param        offset  query  int  false  "offset"
// @Success      200     {array}  dto.WorksheetResponse
// @Router       /api/worksheets [get]
func (h *WorksheetHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	list, err := h.uc.List(ctx, page.Limit, page.Offset)
	if err != nil {
		h.log.Error().Err(err).Msg("listar entradas de trabajo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
	return c.JSON(list)
}

// ownerOrAdmin autoriza el acceso al recurso: dueño o admin. Si no está
// autorizado, escribe la respuesta (403 o 500) y devuelve ok=false.
func (h *WorksheetHandler) ownerOrAdmin(c *fiber.Ctx, ownerEmail string) (bool, error) {
	sessionEmail := GetEmail(c)
	if sessionEmail == ownerEmail {
		return true, nil
	}
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	admin, err := h.resolver.IsAdmin(ctx, sessionEmail)
	if err != nil {
		h.log.Error().Err(err).Str("email", sessionEmail).Msg("resolver rol de admin")
		return false, c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
	if !admin {
		return false, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el dueño o un administrador"})
	}
	return true, nil
}
