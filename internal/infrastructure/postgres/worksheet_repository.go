package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

var _ repository.WorksheetRepository = (*WorksheetRepo)(nil)

// WorksheetRepo implementación del puerto WorksheetRepository sobre PostgreSQL.
type WorksheetRepo struct {
	db dbtx
}

// NewWorksheetRepository construye el adaptador de persistencia para entradas de trabajo.
func NewWorksheetRepository(db dbtx) *WorksheetRepo {
	return &WorksheetRepo{db: db}
}

// Create persiste una entrada de trabajo.
func (r *WorksheetRepo) Create(ctx context.Context, ws *entity.Worksheet) error {
	query := `
		INSERT INTO worksheets (id, email, task, hours, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, ws.ID, ws.Email, ws.Task, ws.Hours, ws.Date)
	if err != nil {
		return fmt.Errorf("insert worksheet: %w", err)
	}
	return nil
}

// ListByEmail lista entradas de un empleado, más recientes primero.
func (r *WorksheetRepo) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Worksheet, error) {
	query := `
		SELECT id, email, task, hours, date FROM worksheets
		WHERE email = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, email, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list worksheets by email: %w", err)
	}
	defer rows.Close()
	return scanWorksheets(rows)
}

// List lista todas las entradas, más recientes primero.
func (r *WorksheetRepo) List(ctx context.Context, limit, offset int) ([]*entity.Worksheet, error) {
	query := `
		SELECT id, email, task, hours, date FROM worksheets
		ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list worksheets: %w", err)
	}
	defer rows.Close()
	return scanWorksheets(rows)
}

func scanWorksheets(rows pgx.Rows) ([]*entity.Worksheet, error) {
	var list []*entity.Worksheet
	for rows.Next() {
		var ws entity.Worksheet
		if err := rows.Scan(&ws.ID, &ws.Email, &ws.Task, &ws.Hours, &ws.Date); err != nil {
			return nil, fmt.Errorf("scan worksheet: %w", err)
		}
		list = append(list, &ws)
	}
	return list, rows.Err()
}
