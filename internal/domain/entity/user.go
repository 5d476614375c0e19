package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// User representa una cuenta del sistema, identificada por su email (único e inmutable).
// Role, IsVerified, IsFired y Salary solo se mutan por operaciones explícitas del ciclo
// de vida; el registro nunca los acepta del cliente.
type User struct {
	Email       string
	Name        string
	Photo       string
	Designation string
	BankAccount string
	Salary      decimal.Decimal
	Role        string // admin, hr, employee
	IsVerified  bool
	IsFired     bool
	Extras      map[string]string // campos de perfil opcionales, acotados a string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasRole indica si la cuenta tiene exactamente el rol dado.
func (u *User) HasRole(role string) bool {
	return u != nil && u.Role == role
}
