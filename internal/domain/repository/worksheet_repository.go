package repository

import (
	"context"

	"github.com/jhoicas/nomina-api/internal/domain/entity"
)

// WorksheetRepository define el puerto de persistencia para entradas de trabajo.
type WorksheetRepository interface {
	Create(ctx context.Context, ws *entity.Worksheet) error
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Worksheet, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Worksheet, error)
}
