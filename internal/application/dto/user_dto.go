package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterUserRequest entrada para crear una cuenta. Cualquier role/isVerified/isFired/salary
// que venga en el cuerpo se descarta: el registro siempre crea un employee sin privilegios.
type RegisterUserRequest struct {
	Email       string            `json:"email" validate:"required,email"`
	Name        string            `json:"name" validate:"required,min=1,max=200"`
	Photo       string            `json:"photo" validate:"omitempty,url"`
	Designation string            `json:"designation" validate:"omitempty,max=200"`
	BankAccount string            `json:"bank_account" validate:"omitempty,max=64"`
	Extras      map[string]string `json:"extras" validate:"omitempty,max=20"`
}

// UpdateUserRequest entrada para actualización parcial. Punteros nil = campo no enviado.
type UpdateUserRequest struct {
	Name        *string            `json:"name"`
	Photo       *string            `json:"photo"`
	Designation *string            `json:"designation"`
	BankAccount *string            `json:"bank_account"`
	Salary      *decimal.Decimal   `json:"salary"`
	Extras      *map[string]string `json:"extras"`
}

// Empty indica que no se envió ningún campo actualizable.
func (r UpdateUserRequest) Empty() bool {
	return r.Name == nil && r.Photo == nil && r.Designation == nil &&
		r.BankAccount == nil && r.Salary == nil && r.Extras == nil
}

// UserResponse salida de una cuenta.
type UserResponse struct {
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Photo       string            `json:"photo,omitempty"`
	Designation string            `json:"designation,omitempty"`
	BankAccount string            `json:"bank_account,omitempty"`
	Salary      decimal.Decimal   `json:"salary"`
	Role        string            `json:"role"`
	IsVerified  bool              `json:"isVerified"`
	IsFired     bool              `json:"isFired"`
	Extras      map[string]string `json:"extras,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// RoleResponse proyección de rol; role vacío si el email no existe.
type RoleResponse struct {
	Role string `json:"role"`
}

// AdminResponse proyección admin/no-admin.
type AdminResponse struct {
	Admin bool `json:"admin"`
}

// FiredResponse proyección de estado de despido.
type FiredResponse struct {
	Fired bool `json:"fired"`
}

// UpdateUserResponse salida de actualización parcial; Modified=false en no-op.
type UpdateUserResponse struct {
	Modified bool          `json:"modified"`
	User     *UserResponse `json:"user,omitempty"`
}
