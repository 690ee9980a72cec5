// README: User store backed by PostgreSQL.
package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// InitSchema creates the users table if it does not exist. Called once at
// startup; safe to re-run.
func (s *Store) InitSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS users (
            id            TEXT PRIMARY KEY,
            email         TEXT NOT NULL UNIQUE,
            first_name    TEXT NOT NULL,
            last_name     TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            created_at    TIMESTAMPTZ NOT NULL
        )`)
	return err
}

func (s *Store) Create(ctx context.Context, u *User) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO users (id, email, first_name, last_name, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrEmailTaken
	}
	return err
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, email, first_name, last_name, password_hash, created_at
        FROM users
        WHERE email = $1`, email,
	)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, email, first_name, last_name, password_hash, created_at
        FROM users
        WHERE id = $1`, id,
	)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update overwrites only the fields passed as non-nil.
func (s *Store) Update(ctx context.Context, id string, firstName, lastName, passwordHash *string) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE users
        SET first_name    = COALESCE($1, first_name),
            last_name     = COALESCE($2, last_name),
            password_hash = COALESCE($3, password_hash)
        WHERE id = $4`,
		firstName, lastName, passwordHash, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
