package messages

import "context"

type Repository interface {
	Insert(ctx context.Context, msg Message) error
	// InsertPair writes the sender's and recipient's copies atomically.
	InsertPair(ctx context.Context, sender, recipient Message) error
	Delete(ctx context.Context, ownerID, id string, timeMS int64) error
	DeleteExpired(ctx context.Context, ownerID string, beforeMS int64) (int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Message, error)
}
