package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/inkwell-blog/inkwell/internal/entities"
	"github.com/inkwell-blog/inkwell/internal/storage"
)

type userDTO struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Lastname     string    `db:"lastname"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (d userDTO) toEntity() *entities.User {
	return &entities.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		Name:         d.Name,
		Lastname:     d.Lastname,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

const userColumns = `id, username, email, name, lastname, password_hash, created_at, updated_at`

func (s pg) CreateUser(ctx context.Context, p *storage.CreateUserParams) (*entities.User, error) {
	var d userDTO

	if err := sqlx.GetContext(ctx, s.ext, &d, `
			INSERT INTO "user"(id, username, email, name, lastname, password_hash)
			VALUES($1, $2, $3, $4, $5, $6)
			RETURNING `+userColumns,
		p.ID, p.Username, p.Email, p.Name, p.Lastname, p.PasswordHash,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrAlreadyExists
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var d userDTO

	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT `+userColumns+` FROM "user" WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var d userDTO

	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1`, email,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) UpdateUser(ctx context.Context, id string, p *storage.UpdateUserParams) (*entities.User, error) {
	var d userDTO

	if err := sqlx.GetContext(ctx, s.ext, &d, `
			UPDATE "user" SET name = $2, lastname = $3, updated_at = now()
			WHERE id = $1
			RETURNING `+userColumns,
		id, p.Name, p.Lastname,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) DeleteUser(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM "user" WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}
