package payroll_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/internal/application/payroll"
	"github.com/jhoicas/nomina-api/internal/domain"
	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error { return nil }
func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error { return nil }
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}
func (f *fakeUserRepo) ListVerified(_ context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

type periodKey struct {
	email       string
	month, year int
}

// fakePaymentRepo replica el contrato del adaptador: el "índice único" sobre
// (email, month, year) convierte el insert duplicado en ErrConflict.
type fakePaymentRepo struct {
	byID     map[string]*entity.Payment
	byPeriod map[periodKey]bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		byID:     make(map[string]*entity.Payment),
		byPeriod: make(map[periodKey]bool),
	}
}

func (f *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	key := periodKey{p.Email, p.Month, p.Year}
	if f.byPeriod[key] {
		return domain.ErrConflict
	}
	f.byPeriod[key] = true
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	return f.byID[id], nil
}

func (f *fakePaymentRepo) ExistsForPeriod(_ context.Context, email string, month, year int) (bool, error) {
	return f.byPeriod[periodKey{email, month, year}], nil
}

func (f *fakePaymentRepo) ListByEmail(_ context.Context, email string, limit, offset int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.byID {
		if p.Email == email {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta la función directamente sobre el repo compartido; la
// atomicidad real la prueba el adaptador de PostgreSQL, aquí solo el flujo.
type fakeTxRunner struct {
	repo repository.PaymentRepository
}

func (f *fakeTxRunner) RunPayroll(_ context.Context, fn func(repository.PaymentRepository) error) error {
	return fn(f.repo)
}

type fakeIntents struct {
	calls int
	err   error
}

func (f *fakeIntents) CreateIntent(_ context.Context, email string, amount decimal.Decimal, description string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "sim_test_intent", nil
}

type fakePayslips struct{}

func (fakePayslips) GeneratePayslipPDF(_ context.Context, _ *entity.Payment, _ *entity.User) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

func buildPayroll(users map[string]*entity.User) (*payroll.PayrollUseCase, *fakePaymentRepo, *fakeIntents) {
	payments := newFakePaymentRepo()
	intents := &fakeIntents{}
	uc := payroll.NewPayrollUseCase(
		&fakeTxRunner{repo: payments},
		&fakeUserRepo{users: users},
		payments,
		intents,
		fakePayslips{},
	)
	return uc, payments, intents
}

func verifiedEmployee(email string, salary int64) *entity.User {
	return &entity.User{
		Email:      email,
		Name:       "Empleado de Prueba",
		Salary:     decimal.NewFromInt(salary),
		Role:       entity.RoleEmployee,
		IsVerified: true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pay
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: camino feliz — el monto sale del salario almacenado, nunca del cuerpo.
func TestPay_UsaElSalarioAlmacenado(t *testing.T) {
	uc, _, intents := buildPayroll(map[string]*entity.User{
		"paga@empresa.com": verifiedEmployee("paga@empresa.com", 3_000_000),
	})

	out, err := uc.Pay(context.Background(), dto.CreatePaymentRequest{
		Email: "paga@empresa.com", Month: 6, Year: 2026,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3_000_000).Equal(out.Amount))
	assert.Equal(t, "sim_test_intent", out.IntentID)
	assert.Equal(t, 1, intents.calls)
}

// Caso 2: pagar dos veces el mismo período → ErrConflict.
func TestPay_PeriodoDuplicado_RetornaConflicto(t *testing.T) {
	uc, _, _ := buildPayroll(map[string]*entity.User{
		"paga@empresa.com": verifiedEmployee("paga@empresa.com", 3_000_000),
	})
	in := dto.CreatePaymentRequest{Email: "paga@empresa.com", Month: 6, Year: 2026}

	_, err := uc.Pay(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Pay(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Caso 3: empleado sin verificar o despedido → ErrForbidden, sin tocar el
// procesador de pagos.
func TestPay_SinVerificarODespedido_RetornaForbidden(t *testing.T) {
	sinVerificar := verifiedEmployee("nuevo@empresa.com", 1_000_000)
	sinVerificar.IsVerified = false
	despedido := verifiedEmployee("sale@empresa.com", 1_000_000)
	despedido.IsFired = true

	uc, _, intents := buildPayroll(map[string]*entity.User{
		"nuevo@empresa.com": sinVerificar,
		"sale@empresa.com":  despedido,
	})

	_, err := uc.Pay(context.Background(), dto.CreatePaymentRequest{Email: "nuevo@empresa.com", Month: 6, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Pay(context.Background(), dto.CreatePaymentRequest{Email: "sale@empresa.com", Month: 6, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.Equal(t, 0, intents.calls, "no se crean intentos de pago para cuentas no pagables")
}

// Caso 4: email inexistente → ErrUserNotFound.
func TestPay_EmailInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := buildPayroll(map[string]*entity.User{})
	_, err := uc.Pay(context.Background(), dto.CreatePaymentRequest{Email: "nadie@empresa.com", Month: 6, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Caso 5: período fuera de rango o salario sin configurar → ErrInvalidInput.
func TestPay_EntradaInvalida(t *testing.T) {
	sinSalario := verifiedEmployee("gratis@empresa.com", 0)
	uc, _, _ := buildPayroll(map[string]*entity.User{
		"gratis@empresa.com": sinSalario,
	})

	_, err := uc.Pay(context.Background(), dto.CreatePaymentRequest{Email: "gratis@empresa.com", Month: 13, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "mes 13 no existe")

	_, err = uc.Pay(context.Background(), dto.CreatePaymentRequest{Email: "gratis@empresa.com", Month: 6, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "salario cero no es pagable")
}

// Caso 6: si el procesador falla, no queda pago registrado.
func TestPay_FalloDelProcesador_NoRegistraPago(t *testing.T) {
	uc, payments, intents := buildPayroll(map[string]*entity.User{
		"paga@empresa.com": verifiedEmployee("paga@empresa.com", 3_000_000),
	})
	intents.err = errors.New("procesador caído")

	_, err := uc.Pay(context.Background(), dto.CreatePaymentRequest{Email: "paga@empresa.com", Month: 6, Year: 2026})
	require.Error(t, err)
	assert.Empty(t, payments.byID, "un intento fallido no debe dejar rastro en pagos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Payslip
// ──────────────────────────────────────────────────────────────────────────────

func TestPayslip_PagoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := buildPayroll(map[string]*entity.User{})
	_, err := uc.Payslip(context.Background(), "id-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayslip_GeneraPDFDelPagoRegistrado(t *testing.T) {
	uc, _, _ := buildPayroll(map[string]*entity.User{
		"paga@empresa.com": verifiedEmployee("paga@empresa.com", 3_000_000),
	})
	out, err := uc.Pay(context.Background(), dto.CreatePaymentRequest{Email: "paga@empresa.com", Month: 6, Year: 2026})
	require.NoError(t, err)

	pdf, err := uc.Payslip(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
