package repository

import (
	"context"

	"github.com/jhoicas/nomina-api/internal/domain/entity"
)

// ReviewRepository define el puerto de persistencia para testimonios.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	List(ctx context.Context, limit, offset int) ([]*entity.Review, error)
}
