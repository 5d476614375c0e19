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

// MessageUseCase recibe mensajes de contacto y los expone a administración.
type MessageUseCase struct {
	repo repository.MessageRepository
}

// NewMessageUseCase construye el caso de uso.
func NewMessageUseCase(repo repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{repo: repo}
}

// Create guarda un mensaje de contacto enviado desde el sitio público.
func (uc *MessageUseCase) Create(ctx context.Context, in dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	if in.Message == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.Message{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Body:      in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return messageToResponse(m), nil
}

// List lista mensajes recibidos (solo administración).
func (uc *MessageUseCase) List(ctx context.Context, limit, offset int) ([]*dto.MessageResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, messageToResponse(m))
	}
	return out, nil
}

func messageToResponse(m *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Body,
		CreatedAt: m.CreatedAt,
	}
}
