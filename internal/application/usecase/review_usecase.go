package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/internal/domain"
	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

// ReviewUseCase publica y lista testimonios del sitio público.
type ReviewUseCase struct {
	repo repository.ReviewRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo}
}

// Create publica un testimonio.
func (uc *ReviewUseCase) Create(ctx context.Context, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.Rating < 1 || in.Rating > 5 || in.Comment == "" {
		return nil, domain.ErrInvalidInput
	}
	r := &entity.Review{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return reviewToResponse(r), nil
}

// List lista testimonios con paginación.
func (uc *ReviewUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ReviewResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, reviewToResponse(r))
	}
	return out, nil
}

func reviewToResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
