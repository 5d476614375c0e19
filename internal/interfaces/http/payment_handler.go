package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/internal/application/payroll"
	"github.com/jhoicas/nomina-api/internal/domain"
	"github.com/jhoicas/nomina-api/pkg/logger"
)

// PaymentHandler maneja pagos de nómina y desprendibles.
type PaymentHandler struct {
	uc           *payroll.PayrollUseCase
	resolver     roleResolver
	log          *logger.Logger
	storeTimeout time.Duration
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(uc *payroll.PayrollUseCase, resolver roleResolver, log *logger.Logger, storeTimeout time.Duration) *PaymentHandler {
	return &PaymentHandler{uc: uc, resolver: resolver, log: log, storeTimeout: storeTimeout}
}

func (h *PaymentHandler) internalError(c *fiber.Ctx, err error, op string) error {
	h.log.Error().Err(err).Str("op", op).Msg("fallo de infraestructura")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno, intente más tarde",
	})
}

// Create godoc
// @Summary      Pagar el salario de un período (solo admin)
// @Description  El monto sale del salario almacenado. Un período se paga una sola vez: 409 en reintento.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "email, month, year"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()
	out, err := h.uc.Pay(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido o salario sin configurar"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo se paga a empleados verificados y activos"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PERIOD_PAID", Message: "el período ya fue pagado"})
		}
		return h.internalError(c, err, "create_payment")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByEmail godoc
// @Summary      Listar pagos de un empleado (dueño o admin)
// @Tags         payments
// @Produce      json
// @Param        email   path   string  true   "email"
// @Param        limit   query  int     false  "límite"
// @Param        offset  query  int     false  "offset"
// @Success      200     {array}  dto.PaymentResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/payments/{email} [get]
func (h *PaymentHandler) ListByEmail(c *fiber.Ctx) error {
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
		return h.internalError(c, err, "list_payments")
	}
	return c.JSON(list)
}

// Payslip godoc
// @Summary      Descargar el desprendible PDF de un pago (dueño o admin)
// @Tags         payments
// @Produce      application/pdf
// @Param        id  path  string  true  "id del pago"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/payslip [get]
func (h *PaymentHandler) Payslip(c *fiber.Ctx) error {
	id := c.Params("id")
	ctx, cancel := storeCtx(c, h.storeTimeout)
	defer cancel()

	payment, err := h.uc.GetByID(ctx, id)
	if err != nil {
		return h.internalError(c, err, "get_payment")
	}
	if payment == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
	}
	if ok, err := h.ownerOrAdmin(c, payment.Email); !ok {
		return err
	}

	pdfBytes, err := h.uc.Payslip(ctx, id)
	if err != nil {
		return h.internalError(c, err, "generate_payslip")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="desprendible-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}

// ownerOrAdmin autoriza el acceso al recurso: dueño o admin. Si no está
// autorizado, escribe la respuesta (403 o 500) y devuelve ok=false.
func (h *PaymentHandler) ownerOrAdmin(c *fiber.Ctx, ownerEmail string) (bool, error) {
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
