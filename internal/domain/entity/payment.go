package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment es un pago de salario registrado para un empleado.
// La combinación (Email, Month, Year) es única: no se paga dos veces el mismo período.
type Payment struct {
	ID       string // uuid
	Email    string
	Name     string
	Amount   decimal.Decimal
	Month    int // 1..12
	Year     int
	IntentID string // referencia opaca del procesador de pagos externo
	PaidAt   time.Time
}
