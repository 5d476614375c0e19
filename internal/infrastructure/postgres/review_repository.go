package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	db dbtx
}

// NewReviewRepository construye el adaptador de persistencia para testimonios.
func NewReviewRepository(db dbtx) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Create persiste un testimonio.
func (r *ReviewRepo) Create(ctx context.Context, rv *entity.Review) error {
	query := `
		INSERT INTO reviews (id, name, email, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, rv.ID, rv.Name, rv.Email, rv.Rating, rv.Comment, rv.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// List lista testimonios, más recientes primero.
func (r *ReviewRepo) List(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, name, email, rating, comment, created_at FROM reviews
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Email, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}
