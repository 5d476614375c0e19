package usecase

import (
	"context"
	"maps"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/internal/domain"
	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

// UserUseCase gobierna el ciclo de vida de las cuentas: alta, actualización de
// campos, verificación y despido. El email es la clave: único e inmutable.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Register crea una cuenta nueva. Los campos de autorización se fuerzan a sus
// valores por defecto (role=employee, sin verificar, sin despedir, salario 0)
// sin importar lo que venga del cliente: un registro nunca puede autoasignarse
// privilegios. Devuelve ErrEmailAlreadyExists si el email ya existe; la misma
// condición detectada por el índice único en el insert (carrera entre el
// pre-chequeo y el insert) se reporta igual.
func (uc *UserUseCase) Register(ctx context.Context, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	user := &entity.User{
		Email:       in.Email,
		Name:        in.Name,
		Photo:       in.Photo,
		Designation: in.Designation,
		BankAccount: in.BankAccount,
		Salary:      decimal.Zero,
		Role:        entity.RoleEmployee,
		IsVerified:  false,
		IsFired:     false,
		Extras:      in.Extras,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// GetByEmail obtiene una cuenta; (nil, nil) si no existe.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// UpdateFields aplica una actualización parcial sobre los campos permitidos.
// Distingue dos resultados que el cliente debe poder diferenciar:
//   - ErrUserNotFound: el email no existe.
//   - ErrNoChange: el email existe pero los campos enviados son idénticos.
//
// Role, IsVerified e IsFired nunca se tocan por esta vía.
func (uc *UserUseCase) UpdateFields(ctx context.Context, email string, in dto.UpdateUserRequest) (*dto.UpdateUserResponse, error) {
	if in.Empty() {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	changed := false
	if in.Name != nil && *in.Name != user.Name {
		user.Name = *in.Name
		changed = true
	}
	if in.Photo != nil && *in.Photo != user.Photo {
		user.Photo = *in.Photo
		changed = true
	}
	if in.Designation != nil && *in.Designation != user.Designation {
		user.Designation = *in.Designation
		changed = true
	}
	if in.BankAccount != nil && *in.BankAccount != user.BankAccount {
		user.BankAccount = *in.BankAccount
		changed = true
	}
	if in.Salary != nil && !in.Salary.Equal(user.Salary) {
		user.Salary = *in.Salary
		changed = true
	}
	if in.Extras != nil && !maps.Equal(*in.Extras, user.Extras) {
		user.Extras = *in.Extras
		changed = true
	}
	if !changed {
		return nil, domain.ErrNoChange
	}

	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UpdateUserResponse{Modified: true, User: entityToUserResponse(user)}, nil
}

// SetVerified marca la cuenta como verificada. Idempotente: verificar dos veces
// no es error.
func (uc *UserUseCase) SetVerified(ctx context.Context, email string) error {
	return uc.setFlag(ctx, email, func(u *entity.User) bool {
		if u.IsVerified {
			return false
		}
		u.IsVerified = true
		return true
	})
}

// SetFired marca la cuenta como despedida. Idempotente y de una sola vía:
// no existe operación para revertir un despido.
func (uc *UserUseCase) SetFired(ctx context.Context, email string) error {
	return uc.setFlag(ctx, email, func(u *entity.User) bool {
		if u.IsFired {
			return false
		}
		u.IsFired = true
		return true
	})
}

func (uc *UserUseCase) setFlag(ctx context.Context, email string, apply func(*entity.User) bool) error {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !apply(user) {
		return nil // ya estaba en el estado deseado
	}
	user.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, user)
}

// GetRole devuelve el rol de la cuenta; "" si el email no existe.
// Un email desconocido no es error: se trata igual que "sin privilegios".
func (uc *UserUseCase) GetRole(ctx context.Context, email string) (string, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

// IsAdmin indica si la cuenta existe y tiene rol admin. Se consulta la base en
// cada llamada: un cambio de rol aplica en la siguiente petición sin reemitir
// el token.
func (uc *UserUseCase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.HasRole(entity.RoleAdmin), nil
}

// IsFired indica si la cuenta existe y está despedida; false si no existe.
func (uc *UserUseCase) IsFired(ctx context.Context, email string) (bool, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsFired, nil
}

// ListVerified lista cuentas verificadas con paginación.
func (uc *UserUseCase) ListVerified(ctx context.Context, limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.repo.ListVerified(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return usersToResponses(users), nil
}

// List lista todas las cuentas con paginación.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return usersToResponses(users), nil
}

func usersToResponses(users []*entity.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, entityToUserResponse(u))
	}
	return out
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Email:       u.Email,
		Name:        u.Name,
		Photo:       u.Photo,
		Designation: u.Designation,
		BankAccount: u.BankAccount,
		Salary:      u.Salary,
		Role:        u.Role,
		IsVerified:  u.IsVerified,
		IsFired:     u.IsFired,
		Extras:      u.Extras,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
