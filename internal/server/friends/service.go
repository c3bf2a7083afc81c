// Package friends maintains the bidirectional friend-request state machine.
//
// Each unordered user pair moves through: none -> pending -> confirmed, with
// pending or confirmed dropping back to none on reject/unfriend. State is
// stored as two mirrored link halves, one per user.
package friends

import (
	"context"
	"errors"
	"time"

	"github.com/pingreng/pingr-server/internal/server/users"
	"github.com/pingreng/pingr-server/internal/shared"
)

type Service struct {
	repo  Repository
	users users.Repository
}

func NewService(repo Repository, usersRepo users.Repository) *Service {
	return &Service{repo: repo, users: usersRepo}
}

// Request starts a pending friendship from the owner to the named user.
func (s *Service) Request(ctx context.Context, ownerID, ownerUsername, targetUsername string) error {
	target, err := s.users.FindByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.Errorf(shared.ErrNotFound, "User was not found.")
		}
		return err
	}

	if target.ID == ownerID {
		return shared.Errorf(shared.ErrValidation, "You cannot send a friend request to yourself.")
	}

	existing, err := s.repo.Find(ctx, ownerID, target.ID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if existing != nil {
		switch {
		case existing.Confirmed:
			return shared.Errorf(shared.ErrConflict, "You are already friends with %s.", target.Username)
		case existing.Requestor:
			return shared.Errorf(shared.ErrConflict, "You already have a friend request pending.")
		default:
			return shared.Errorf(shared.ErrConflict, "%s has already sent you a friend request.", target.Username)
		}
	}

	ownerHalf := Link{
		OwnerID:      ownerID,
		PeerID:       target.ID,
		PeerUsername: target.Username,
		Requestor:    true,
	}
	peerHalf := Link{
		OwnerID:      target.ID,
		PeerID:       ownerID,
		PeerUsername: ownerUsername,
		Requestor:    false,
	}

	if err := s.repo.InsertPair(ctx, ownerHalf, peerHalf); err != nil {
		return err
	}

	return s.users.TouchLastActive(ctx, ownerID, time.Now())
}

// Confirm accepts a pending request from peerID. Confirming a pair with no
// stored link is a no-op.
func (s *Service) Confirm(ctx context.Context, ownerID, peerID string) error {
	return s.repo.ConfirmPair(ctx, ownerID, peerID)
}

// Remove deletes the link from both users, whether pending or confirmed.
// Removing an absent link is a no-op.
func (s *Service) Remove(ctx context.Context, ownerID, peerID string) error {
	return s.repo.DeletePair(ctx, ownerID, peerID)
}

// List returns the owner's link halves, pending and confirmed alike.
func (s *Service) List(ctx context.Context, ownerID string) ([]Link, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
