package repository

import (
	"context"

	"github.com/jhoicas/nomina-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para pagos de salario.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	// ExistsForPeriod indica si ya hay un pago registrado para (email, month, year).
	ExistsForPeriod(ctx context.Context, email string, month, year int) (bool, error)
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Payment, error)
}
