package friends

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pingreng/pingr-server/internal/dbx"
	"github.com/pingreng/pingr-server/internal/shared"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Find(ctx context.Context, ownerID, peerID string) (*Link, error) {
	query :=
		`SELECT owner_id, peer_id, peer_username, confirmed, requestor, created_at
		 FROM friend_links
		 WHERE owner_id = $1 AND peer_id = $2
		 `

	link := &Link{}
	err := r.db.QueryRowContext(ctx, query, ownerID, peerID).Scan(
		&link.OwnerID, &link.PeerID, &link.PeerUsername, &link.Confirmed, &link.Requestor, &link.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return link, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]Link, error) {
	query :=
		`SELECT owner_id, peer_id, peer_username, confirmed, requestor, created_at
		 FROM friend_links
		 WHERE owner_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	links := []Link{}
	for rows.Next() {
		var link Link
		if err := rows.Scan(&link.OwnerID, &link.PeerID, &link.PeerUsername,
			&link.Confirmed, &link.Requestor, &link.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// InsertPair writes both halves of a new pending request in one transaction.
func (r *PostgresRepository) InsertPair(ctx context.Context, owner, peer Link) error {
	query :=
		`INSERT INTO friend_links (owner_id, peer_id, peer_username, confirmed, requestor)
		 VALUES ($1, $2, $3, false, $4)
		 `

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, link := range []Link{owner, peer} {
			if _, err := tx.ExecContext(ctx, query,
				link.OwnerID, link.PeerID, link.PeerUsername, link.Requestor); err != nil {
				return fmt.Errorf("error performing sql request: %v", err)
			}
		}
		return nil
	})
}

// ConfirmPair flips confirmed on both halves in one transaction. A pair with
// no stored halves is left untouched.
func (r *PostgresRepository) ConfirmPair(ctx context.Context, ownerID, peerID string) error {
	query :=
		`UPDATE friend_links SET confirmed = true
		 WHERE owner_id = $1 AND peer_id = $2
		 `

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, query, ownerID, peerID); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		if _, err := tx.ExecContext(ctx, query, peerID, ownerID); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		return nil
	})
}

// DeletePair removes both halves in one transaction; deleting an absent
// pair is a no-op.
func (r *PostgresRepository) DeletePair(ctx context.Context, ownerID, peerID string) error {
	query :=
		`DELETE FROM friend_links
		 WHERE owner_id = $1 AND peer_id = $2
		 `

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, query, ownerID, peerID); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		if _, err := tx.ExecContext(ctx, query, peerID, ownerID); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		return nil
	})
}
