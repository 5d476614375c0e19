package repository

import (
	"context"

	"github.com/jhoicas/nomina-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando el email no existe; el error se
// reserva para fallos de infraestructura.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListVerified(ctx context.Context, limit, offset int) ([]*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
