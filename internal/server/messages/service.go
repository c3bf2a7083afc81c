// Package messages implements sending, deletion, and the expiring read of
// stored messages. Bodies are encrypted before they reach the repository and
// decrypted on the way out.
package messages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pingreng/pingr-server/internal/cryptox"
	"github.com/pingreng/pingr-server/internal/server/users"
	"github.com/pingreng/pingr-server/internal/shared"
)

// TTL is how long a message is retained before the owner's next read
// removes it.
const TTL = 30 * 24 * time.Hour

type Service struct {
	repo  Repository
	users users.Repository
	codec *cryptox.Codec
	now   func() time.Time
}

func NewService(repo Repository, usersRepo users.Repository, codec *cryptox.Codec) *Service {
	return &Service{
		repo:  repo,
		users: usersRepo,
		codec: codec,
		now:   time.Now,
	}
}

// Sender identifies the authenticated author of a message.
type Sender struct {
	ID       string
	Username string
}

func (s *Service) build(sender Sender, title, text string) (Message, error) {
	if text == "" {
		return Message{}, shared.Errorf(shared.ErrValidation, "Text is required.")
	}

	bundle, err := s.codec.Encrypt([]byte(text))
	if err != nil {
		return Message{}, fmt.Errorf("encrypting message: %w", err)
	}

	return Message{
		OwnerID:  sender.ID,
		ID:       uuid.NewString(),
		Title:    title,
		Content:  bundle.Content,
		IV:       bundle.IV,
		FromID:   sender.ID,
		FromName: sender.Username,
		TimeMS:   s.now().UnixMilli(),
	}, nil
}

// SendSelf stores a single encrypted copy on the sender.
func (s *Service) SendSelf(ctx context.Context, sender Sender, title, text string) error {
	msg, err := s.build(sender, title, text)
	if err != nil {
		return err
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		return err
	}

	return s.users.TouchLastActive(ctx, sender.ID, s.now())
}

// SendTo stores one copy on the sender and one on the recipient, both
// carrying the same id, in a single transaction.
func (s *Service) SendTo(ctx context.Context, sender Sender, recipientID, title, text string) error {
	recipient, err := s.users.FindByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.Errorf(shared.ErrNotFound, "User was not found.")
		}
		return err
	}

	msg, err := s.build(sender, title, text)
	if err != nil {
		return err
	}
	msg.ToID = recipient.ID
	msg.ToName = recipient.Username

	recipientCopy := msg
	recipientCopy.OwnerID = recipient.ID

	if err := s.repo.InsertPair(ctx, msg, recipientCopy); err != nil {
		return err
	}

	return s.users.TouchLastActive(ctx, sender.ID, s.now())
}

// Delete removes the owner's copy matched by id and timestamp. Deleting an
// absent message is a no-op.
func (s *Service) Delete(ctx context.Context, ownerID, id string, timeMS int64) error {
	if err := s.repo.Delete(ctx, ownerID, id, timeMS); err != nil {
		return err
	}
	return s.users.TouchLastActive(ctx, ownerID, s.now())
}

// ListAndExpire first drops every message of the owner older than TTL, then
// returns the survivors decrypted. The expiry on read is deliberate: there
// is no background sweep.
func (s *Service) ListAndExpire(ctx context.Context, ownerID string) ([]View, error) {
	cutoff := s.now().Add(-TTL).UnixMilli()
	if _, err := s.repo.DeleteExpired(ctx, ownerID, cutoff); err != nil {
		return nil, err
	}

	msgs, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(msgs))
	for _, m := range msgs {
		text, err := s.codec.Decrypt(cryptox.Bundle{IV: m.IV, Content: m.Content})
		if err != nil {
			return nil, fmt.Errorf("decrypting message %s: %w", m.ID, err)
		}
		views = append(views, View{
			ID:       m.ID,
			Title:    m.Title,
			Text:     string(text),
			FromID:   m.FromID,
			FromName: m.FromName,
			ToID:     m.ToID,
			ToName:   m.ToName,
			TimeMS:   m.TimeMS,
		})
	}

	return views, nil
}
