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

// WorksheetUseCase registra y consulta entradas de trabajo.
type WorksheetUseCase struct {
	repo repository.WorksheetRepository
}

// NewWorksheetUseCase construye el caso de uso.
func NewWorksheetUseCase(repo repository.WorksheetRepository) *WorksheetUseCase {
	return &WorksheetUseCase{repo: repo}
}

// Create registra una entrada de trabajo. El dueño es siempre el email de la
// sesión autenticada, nunca uno declarado en el cuerpo.
func (uc *WorksheetUseCase) Create(ctx context.Context, ownerEmail string, in dto.CreateWorksheetRequest) (*dto.WorksheetResponse, error) {
	if in.Task == "" || in.Hours.IsNegative() || in.Hours.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	ws := &entity.Worksheet{
		ID:    uuid.New().String(),
		Email: ownerEmail,
		Task:  in.Task,
		Hours: in.Hours,
		Date:  date,
	}
	if err := uc.repo.Create(ctx, ws); err != nil {
		return nil, err
	}
	return worksheetToResponse(ws), nil
}

// ListByEmail lista las entradas de un empleado.
func (uc *WorksheetUseCase) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*dto.WorksheetResponse, error) {
	list, err := uc.repo.ListByEmail(ctx, email, limit, offset)
	if err != nil {
		return nil, err
	}
	return worksheetsToResponses(list), nil
}

// List lista todas las entradas (vista de administración).
func (uc *WorksheetUseCase) List(ctx context.Context, limit, offset int) ([]*dto.WorksheetResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return worksheetsToResponses(list), nil
}

func worksheetsToResponses(list []*entity.Worksheet) []*dto.WorksheetResponse {
	out := make([]*dto.WorksheetResponse, 0, len(list))
	for _, ws := range list {
		out = append(out, worksheetToResponse(ws))
	}
	return out
}

func worksheetToResponse(ws *entity.Worksheet) *dto.WorksheetResponse {
	return &dto.WorksheetResponse{
		ID:    ws.ID,
		Email: ws.Email,
		Task:  ws.Task,
		Hours: ws.Hours,
		Date:  ws.Date,
	}
}
