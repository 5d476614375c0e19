package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para pagar el salario de un período.
type CreatePaymentRequest struct {
	Email string `json:"email" validate:"required,email"`
	Month int    `json:"month" validate:"required,min=1,max=12"`
	Year  int    `json:"year" validate:"required,min=2000"`
}

// PaymentResponse salida de un pago registrado.
type PaymentResponse struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	IntentID string          `json:"intent_id,omitempty"`
	PaidAt   time.Time       `json:"paid_at"`
}
