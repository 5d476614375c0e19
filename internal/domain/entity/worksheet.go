package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worksheet es una entrada de trabajo registrada por un empleado.
type Worksheet struct {
	ID    string // uuid
	Email string // dueño de la entrada
	Task  string
	Hours decimal.Decimal
	Date  time.Time
}
