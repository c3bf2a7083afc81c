package rest

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pingreng/pingr-server/internal/cryptox"
	"github.com/pingreng/pingr-server/internal/logging"
	"github.com/pingreng/pingr-server/internal/server/config"
	"github.com/pingreng/pingr-server/internal/server/friends"
	"github.com/pingreng/pingr-server/internal/server/messages"
	"github.com/pingreng/pingr-server/internal/server/users"
	"github.com/pingreng/pingr-server/internal/server/version"
	"github.com/pingreng/pingr-server/internal/shared"
)

// In-memory repositories backing the handler tests.

type memUsers struct {
	byID map[string]*users.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]*users.User{}}
}

func (m *memUsers) Create(ctx context.Context, user *users.User) (*users.User, error) {
	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	m.byID[u.ID] = &u
	return &u, nil
}

func (m *memUsers) FindByUsername(ctx context.Context, username string) (*users.User, error) {
	for _, u := range m.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memUsers) FindByID(ctx context.Context, id string) (*users.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func (m *memUsers) TouchLastActive(ctx context.Context, id string, t time.Time) error {
	if u, ok := m.byID[id]; ok {
		u.LastActive = &t
	}
	return nil
}

type memLinks struct {
	links map[string]map[string]*friends.Link
}

func newMemLinks() *memLinks {
	return &memLinks{links: map[string]map[string]*friends.Link{}}
}

func (m *memLinks) put(l friends.Link) {
	if m.links[l.OwnerID] == nil {
		m.links[l.OwnerID] = map[string]*friends.Link{}
	}
	m.links[l.OwnerID][l.PeerID] = &l
}

func (m *memLinks) Find(ctx context.Context, ownerID, peerID string) (*friends.Link, error) {
	if l, ok := m.links[ownerID][peerID]; ok {
		return l, nil
	}
	return nil, shared.ErrNotFound
}

func (m *memLinks) ListByOwner(ctx context.Context, ownerID string) ([]friends.Link, error) {
	out := []friends.Link{}
	for _, l := range m.links[ownerID] {
		out = append(out, *l)
	}
	return out, nil
}

func (m *memLinks) InsertPair(ctx context.Context, owner, peer friends.Link) error {
	m.put(owner)
	m.put(peer)
	return nil
}

func (m *memLinks) ConfirmPair(ctx context.Context, ownerID, peerID string) error {
	if l, ok := m.links[ownerID][peerID]; ok {
		l.Confirmed = true
	}
	if l, ok := m.links[peerID][ownerID]; ok {
		l.Confirmed = true
	}
	return nil
}

func (m *memLinks) DeletePair(ctx context.Context, ownerID, peerID string) error {
	delete(m.links[ownerID], peerID)
	delete(m.links[peerID], ownerID)
	return nil
}

type memMessages struct {
	byOwner map[string][]messages.Message
}

func newMemMessages() *memMessages {
	return &memMessages{byOwner: map[string][]messages.Message{}}
}

func (m *memMessages) Insert(ctx context.Context, msg messages.Message) error {
	m.byOwner[msg.OwnerID] = append(m.byOwner[msg.OwnerID], msg)
	return nil
}

func (m *memMessages) InsertPair(ctx context.Context, sender, recipient messages.Message) error {
	m.byOwner[sender.OwnerID] = append(m.byOwner[sender.OwnerID], sender)
	m.byOwner[recipient.OwnerID] = append(m.byOwner[recipient.OwnerID], recipient)
	return nil
}

func (m *memMessages) Delete(ctx context.Context, ownerID, id string, timeMS int64) error {
	kept := m.byOwner[ownerID][:0]
	for _, msg := range m.byOwner[ownerID] {
		if msg.ID != id || msg.TimeMS != timeMS {
			kept = append(kept, msg)
		}
	}
	m.byOwner[ownerID] = kept
	return nil
}

func (m *memMessages) DeleteExpired(ctx context.Context, ownerID string, beforeMS int64) (int64, error) {
	var removed int64
	kept := m.byOwner[ownerID][:0]
	for _, msg := range m.byOwner[ownerID] {
		if msg.TimeMS < beforeMS {
			removed++
			continue
		}
		kept = append(kept, msg)
	}
	m.byOwner[ownerID] = kept
	return removed, nil
}

func (m *memMessages) ListByOwner(ctx context.Context, ownerID string) ([]messages.Message, error) {
	return append([]messages.Message{}, m.byOwner[ownerID]...), nil
}

type memVersions struct {
	byID map[string]string
	err  error
}

func (m *memVersions) Get(ctx context.Context, id string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if v, ok := m.byID[id]; ok {
		return v, nil
	}
	return "", shared.ErrNotFound
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.JWTSecret = "test-secret"
	cfg.DatabaseDSN = "unused"
	cfg.Origin = "http://localhost:3000"
	cfg.EncryptionKey = hex.EncodeToString(key)
	return cfg
}

// newTestServer wires a Server over in-memory repositories.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerWithVersions(t, &memVersions{byID: map[string]string{"current": "1.4.2"}})
}

func newTestServerWithVersions(t *testing.T, versionRepo version.Repository) *Server {
	t.Helper()

	cfg := testConfig(t)

	codec, err := cryptox.NewCodec(cfg.Algorithm, cfg.EncryptionKey)
	require.NoError(t, err)

	userRepo := newMemUsers()
	userService := users.NewService(userRepo)
	friendService := friends.NewService(newMemLinks(), userRepo)
	messageService := messages.NewService(newMemMessages(), userRepo, codec)

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	return NewServer(cfg, logger, userService, friendService, messageService, versionRepo)
}
