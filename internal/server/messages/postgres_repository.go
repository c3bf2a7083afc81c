package messages

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pingreng/pingr-server/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const insertQuery = `
	INSERT INTO messages (owner_id, id, title, content, iv, from_id, from_name, to_id, to_name, time_ms)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

func insertArgs(m Message) []any {
	var title, toID, toName sql.NullString
	if m.Title != "" {
		title = sql.NullString{String: m.Title, Valid: true}
	}
	if m.ToID != "" {
		toID = sql.NullString{String: m.ToID, Valid: true}
		toName = sql.NullString{String: m.ToName, Valid: true}
	}
	return []any{m.OwnerID, m.ID, title, m.Content, m.IV, m.FromID, m.FromName, toID, toName, m.TimeMS}
}

func (r *PostgresRepository) Insert(ctx context.Context, msg Message) error {
	if _, err := r.db.ExecContext(ctx, insertQuery, insertArgs(msg)...); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return nil
}

func (r *PostgresRepository) InsertPair(ctx context.Context, sender, recipient Message) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, msg := range []Message{sender, recipient} {
			if _, err := tx.ExecContext(ctx, insertQuery, insertArgs(msg)...); err != nil {
				return fmt.Errorf("error performing sql request: %v", err)
			}
		}
		return nil
	})
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string, timeMS int64) error {
	query :=
		`DELETE FROM messages
		 WHERE owner_id = $1 AND id = $2 AND time_ms = $3
		 `

	if _, err := r.db.ExecContext(ctx, query, ownerID, id, timeMS); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, ownerID string, beforeMS int64) (int64, error) {
	query :=
		`DELETE FROM messages
		 WHERE owner_id = $1 AND time_ms < $2
		 `

	res, err := r.db.ExecContext(ctx, query, ownerID, beforeMS)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]Message, error) {
	query :=
		`SELECT owner_id, id, title, content, iv, from_id, from_name, to_id, to_name, time_ms
		 FROM messages
		 WHERE owner_id = $1
		 ORDER BY time_ms
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	msgs := []Message{}
	for rows.Next() {
		var m Message
		var title, toID, toName sql.NullString
		if err := rows.Scan(&m.OwnerID, &m.ID, &title, &m.Content, &m.IV,
			&m.FromID, &m.FromName, &toID, &toName, &m.TimeMS); err != nil {
			return nil, err
		}
		m.Title = title.String
		m.ToID = toID.String
		m.ToName = toName.String
		msgs = append(msgs, m)
	}

	return msgs, rows.Err()
}
