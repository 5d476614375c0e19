package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

// PaymentIntentService es el puerto hacia el procesador de pagos externo.
// La referencia devuelta es opaca: el core no interpreta su contenido ni
// reconcilia webhooks.
type PaymentIntentService interface {
	CreateIntent(ctx context.Context, email string, amount decimal.Decimal, description string) (string, error)
}

// PayrollTxRunner ejecuta el registro del pago dentro de una transacción:
// el chequeo de período duplicado y el insert deben ser atómicos.
type PayrollTxRunner interface {
	RunPayroll(ctx context.Context, fn func(paymentRepo repository.PaymentRepository) error) error
}

// PayslipGenerator produce el desprendible de nómina en PDF para un pago.
type PayslipGenerator interface {
	GeneratePayslipPDF(ctx context.Context, payment *entity.Payment, user *entity.User) ([]byte, error)
}
