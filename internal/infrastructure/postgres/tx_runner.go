package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/nomina-api/internal/application/payroll"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

// Ensure TxRunner implements payroll.PayrollTxRunner.
var _ payroll.PayrollTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPayroll inicia una transacción, ejecuta fn con el repo de pagos atado a la
// tx y hace Commit o Rollback. El chequeo de período duplicado y el insert del
// pago viajan juntos.
func (r *TxRunner) RunPayroll(ctx context.Context, fn func(paymentRepo repository.PaymentRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPaymentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
