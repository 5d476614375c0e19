package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/internal/domain"
	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

// PayrollUseCase paga salarios: crea el intento de pago en el procesador externo
// y registra el pago del período. Un período (email, mes, año) se paga una sola vez.
type PayrollUseCase struct {
	txRunner    PayrollTxRunner
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	intents     PaymentIntentService
	payslips    PayslipGenerator
}

// NewPayrollUseCase construye el caso de uso de nómina.
func NewPayrollUseCase(
	txRunner PayrollTxRunner,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	intents PaymentIntentService,
	payslips PayslipGenerator,
) *PayrollUseCase {
	return &PayrollUseCase{
		txRunner:    txRunner,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		intents:     intents,
		payslips:    payslips,
	}
}

// Pay paga el salario de un período a un empleado verificado y no despedido.
// El monto sale SIEMPRE del salario almacenado, nunca del cuerpo de la petición.
// Devuelve ErrConflict si el período ya fue pagado; la carrera entre el chequeo
// y el insert la cierra el índice único (email, month, year) dentro de la tx.
func (uc *PayrollUseCase) Pay(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.Month < 1 || in.Month > 12 || in.Year < 2000 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.IsFired || !user.IsVerified {
		return nil, domain.ErrForbidden
	}
	if !user.Salary.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	description := fmt.Sprintf("salario %d/%d de %s", in.Month, in.Year, user.Email)
	intentID, err := uc.intents.CreateIntent(ctx, user.Email, user.Salary, description)
	if err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		ID:       uuid.New().String(),
		Email:    user.Email,
		Name:     user.Name,
		Amount:   user.Salary,
		Month:    in.Month,
		Year:     in.Year,
		IntentID: intentID,
		PaidAt:   time.Now(),
	}
	err = uc.txRunner.RunPayroll(ctx, func(paymentRepo repository.PaymentRepository) error {
		exists, err := paymentRepo.ExistsForPeriod(ctx, payment.Email, payment.Month, payment.Year)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrConflict
		}
		return paymentRepo.Create(ctx, payment)
	})
	if err != nil {
		return nil, err
	}
	return paymentToResponse(payment), nil
}

// ListByEmail lista los pagos de un empleado.
func (uc *PayrollUseCase) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*dto.PaymentResponse, error) {
	list, err := uc.paymentRepo.ListByEmail(ctx, email, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, paymentToResponse(p))
	}
	return out, nil
}

// GetByID obtiene un pago registrado; (nil, nil) si no existe.
func (uc *PayrollUseCase) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := uc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return paymentToResponse(p), nil
}

// Payslip genera el desprendible PDF de un pago registrado.
func (uc *PayrollUseCase) Payslip(ctx context.Context, paymentID string) ([]byte, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByEmail(ctx, payment.Email)
	if err != nil {
		return nil, err
	}
	return uc.payslips.GeneratePayslipPDF(ctx, payment, user)
}

func paymentToResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:       p.ID,
		Email:    p.Email,
		Name:     p.Name,
		Amount:   p.Amount,
		Month:    p.Month,
		Year:     p.Year,
		IntentID: p.IntentID,
		PaidAt:   p.PaidAt,
	}
}
