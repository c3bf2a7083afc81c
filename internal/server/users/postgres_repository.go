package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pingreng/pingr-server/internal/shared"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	query :=
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// The pre-insert lookups normally catch duplicates first; the
			// unique indexes close the race between them.
			return nil, shared.Errorf(shared.ErrConflict, "Username or email is already registered.")
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.findBy(ctx, "username = $1", username)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findBy(ctx, "email = $1", email)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findBy(ctx, "id = $1", id)
}

func (r *PostgresRepository) findBy(ctx context.Context, where string, arg any) (*User, error) {
	query :=
		`SELECT id, username, email, password_hash, last_active, created_at FROM users
		 WHERE ` + where

	user := &User{}
	var lastActive sql.NullTime

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &lastActive, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	if lastActive.Valid {
		user.LastActive = &lastActive.Time
	}

	return user, nil
}

func (r *PostgresRepository) TouchLastActive(ctx context.Context, id string, t time.Time) error {
	query := `UPDATE users SET last_active = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, t); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return nil
}
