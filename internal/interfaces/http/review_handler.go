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

// ReviewHandler maneja los testimonios del sitio público.
type ReviewHandler struct {
	uc           *usecase.ReviewUseCase
	log          *logger.Logger
	storeTimeout time.Duration
}

// NewReviewHandler construye el handler de testimonios.
func NewReviewHandler(uc *usecase.ReviewUseCase, log *logger.Logger, storeTimeout time.Duration) *ReviewHandler {
	return &ReviewHandler{uc: uc, log: log, storeTimeout: storeTimeout}
}

// Create godoc
// @Summary      Publicar un testimonio
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "name, email, rating, comment"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	out, err := h.uc.Create(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rating 1..5 y comment son requeridos"})
		}
		h.log.Error().Err(err).Msg("publicar testimonio")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar testimonios
// @Tags         reviews
// @Produce      json
// @Param        limit   query  int  false  "límite"
// @Param        offset  query  int  false  "offset"
// @Success      200     {array}  dto.ReviewResponse
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	list, err := h.uc.List(ctx, page.Limit, page.Offset)
	if err != nil {
		h.log.Error().Err(err).Msg("listar testimonios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
	return c.JSON(list)
}
