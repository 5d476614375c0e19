package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorksheetRequest entrada para registrar una entrada de trabajo.
// El email del dueño sale del token de sesión, nunca del cuerpo.
type CreateWorksheetRequest struct {
	Task  string          `json:"task" validate:"required,min=1,max=500"`
	Hours decimal.Decimal `json:"hours" validate:"required"`
	Date  time.Time       `json:"date" validate:"required"`
}

// WorksheetResponse salida de una entrada de trabajo.
type WorksheetResponse struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Task  string          `json:"task"`
	Hours decimal.Decimal `json:"hours"`
	Date  time.Time       `json:"date"`
}
