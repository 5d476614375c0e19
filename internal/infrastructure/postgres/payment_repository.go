package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/nomina-api/internal/domain"
	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
// El índice único (email, month, year) garantiza un pago por período aunque dos
// peticiones concurrentes pasen el chequeo previo.
type PaymentRepo struct {
	db dbtx
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(db dbtx) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create persiste un pago. Un 23505 sobre el período se reporta como ErrConflict.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, email, name, amount, month, year, intent_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Email, p.Name, p.Amount, p.Month, p.Year, p.IntentID, p.PaidAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID; (nil, nil) si no existe.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	query := `
		SELECT id, email, name, amount, month, year, intent_id, paid_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Email, &p.Name, &p.Amount, &p.Month, &p.Year, &p.IntentID, &p.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by id: %w", err)
	}
	return &p, nil
}

// ExistsForPeriod indica si ya hay pago para (email, month, year).
func (r *PaymentRepo) ExistsForPeriod(ctx context.Context, email string, month, year int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM payments WHERE email = $1 AND month = $2 AND year = $3)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, email, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("check payment period: %w", err)
	}
	return exists, nil
}

// ListByEmail lista pagos de un empleado, más recientes primero.
func (r *PaymentRepo) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, email, name, amount, month, year, intent_id, paid_at
		FROM payments WHERE email = $1
		ORDER BY year DESC, month DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, email, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.Email, &p.Name, &p.Amount, &p.Month, &p.Year, &p.IntentID, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
