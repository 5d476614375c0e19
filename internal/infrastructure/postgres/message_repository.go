package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementación del puerto MessageRepository sobre PostgreSQL.
type MessageRepo struct {
	db dbtx
}

// NewMessageRepository construye el adaptador de persistencia para mensajes de contacto.
func NewMessageRepository(db dbtx) *MessageRepo {
	return &MessageRepo{db: db}
}

// Create persiste un mensaje de contacto.
func (r *MessageRepo) Create(ctx context.Context, m *entity.Message) error {
	query := `
		INSERT INTO messages (id, name, email, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Body, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// List lista mensajes, más recientes primero.
func (r *MessageRepo) List(ctx context.Context, limit, offset int) ([]*entity.Message, error) {
	query := `
		SELECT id, name, email, body, created_at FROM messages
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
