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

// MessageHandler maneja los mensajes de contacto.
type MessageHandler struct {
	uc           *usecase.MessageUseCase
	log          *logger.Logger
	storeTimeout time.Duration
}

// NewMessageHandler construye el handler de mensajes de contacto.
func NewMessageHandler(uc *usecase.MessageUseCase, log *logger.Logger, storeTimeout time.Duration) *MessageHandler {
	return &MessageHandler{uc: uc, log: log, storeTimeout: storeTimeout}
}

// Create godoc
// @Summary      Enviar un mensaje de contacto
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMessageRequest  true  "name, email, message"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	out, err := h.uc.Create(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y message son requeridos"})
		}
		h.log.Error().Err(err).Msg("guardar mensaje de contacto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mensajes recibidos (solo admin)
// @Tags         messages
// @Produce      json
// @Param        limit   query  int  false  "límite"
// @Param        offset  query  int  false  "offset"
// @Success      200     {array}  dto.MessageResponse
// @Router       /api/messages [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	list, err := h.uc.List(ctx, page.Limit, page.Offset)
	if err != nil {
		h.log.Error().Err(err).Msg("listar mensajes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
	return c.JSON(list)
}
