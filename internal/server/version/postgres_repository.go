package version

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pingreng/pingr-server/internal/shared"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (string, error) {
	query := `SELECT "full" FROM versions WHERE id = $1`

	var full string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&full)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", shared.ErrNotFound
		}
		return "", fmt.Errorf("error performing sql request: %v", err)
	}

	return full, nil
}
