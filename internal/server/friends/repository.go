package friends

import "context"

// Repository persists friend links. The pair operations write both halves
// atomically.
type Repository interface {
	Find(ctx context.Context, ownerID, peerID string) (*Link, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Link, error)
	InsertPair(ctx context.Context, owner, peer Link) error
	ConfirmPair(ctx context.Context, ownerID, peerID string) error
	DeletePair(ctx context.Context, ownerID, peerID string) error
}
