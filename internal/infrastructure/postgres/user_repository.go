package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/nomina-api/internal/domain"
	"github.com/jhoicas/nomina-api/internal/domain/entity"
	"github.com/jhoicas/nomina-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `email, name, photo, designation, bank_account, salary, role, is_verified, is_fired, extras, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// El índice único sobre email cierra la carrera entre el pre-chequeo de
// existencia y el insert: un 23505 se reporta como ErrEmailAlreadyExists.
type UserRepo struct {
	db dbtx
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(db dbtx) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste una cuenta nueva.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		user.Email, user.Name, user.Photo, user.Designation, user.BankAccount,
		user.Salary, user.Role, user.IsVerified, user.IsFired, user.Extras,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail obtiene una cuenta por email; (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update reescribe los campos mutables de la cuenta. El email nunca cambia.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, photo = $3, designation = $4, bank_account = $5,
			salary = $6, role = $7, is_verified = $8, is_fired = $9, extras = $10, updated_at = $11
		WHERE email = $1`
	tag, err := r.db.Exec(ctx, query,
		user.Email, user.Name, user.Photo, user.Designation, user.BankAccount,
		user.Salary, user.Role, user.IsVerified, user.IsFired, user.Extras, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListVerified lista cuentas verificadas con paginación.
func (r *UserRepo) ListVerified(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE is_verified = TRUE ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// List lista todas las cuentas con paginación.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

func (r *UserRepo) list(ctx context.Context, query string, limit, offset int) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.Email, &u.Name, &u.Photo, &u.Designation, &u.BankAccount,
		&u.Salary, &u.Role, &u.IsVerified, &u.IsFired, &u.Extras,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
