package repository

import (
	"context"

	"github.com/jhoicas/nomina-api/internal/domain/entity"
)

// MessageRepository define el puerto de persistencia para mensajes de contacto.
type MessageRepository interface {
	Create(ctx context.Context, m *entity.Message) error
	List(ctx context.Context, limit, offset int) ([]*entity.Message, error)
}
