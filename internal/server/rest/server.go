// Package rest exposes the JSON API over HTTP: registration, sessions,
// friend management, messaging, and the version endpoint.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pingreng/pingr-server/internal/logging"
	"github.com/pingreng/pingr-server/internal/server/config"
	"github.com/pingreng/pingr-server/internal/server/friends"
	"github.com/pingreng/pingr-server/internal/server/messages"
	"github.com/pingreng/pingr-server/internal/server/users"
	"github.com/pingreng/pingr-server/internal/server/version"
)

// maxBodyBytes caps request bodies, matching the original deployment's
// 100 KB JSON limit.
const maxBodyBytes = 100 << 10

type Server struct {
	addr       string
	router     *mux.Router
	logger     logging.Logger
	jwtSecret  []byte
	origin     string
	production bool
	versionID  string

	users    *users.Service
	friends  *friends.Service
	messages *messages.Service
	versions version.Repository
}

func NewServer(
	cfg *config.Config,
	l logging.Logger,
	us *users.Service,
	fs *friends.Service,
	ms *messages.Service,
	vs version.Repository,
) *Server {
	s := &Server{
		addr:       cfg.Addr,
		logger:     l.With("module", "rest_server"),
		jwtSecret:  []byte(cfg.JWTSecret),
		origin:     cfg.Origin,
		production: cfg.Production(),
		versionID:  cfg.VersionID,
		users:      us,
		friends:    fs,
		messages:   ms,
		versions:   vs,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests, s.cors, limitBody)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/users", s.requireAuth(s.handleGetOwn)).Methods(http.MethodGet)
	api.HandleFunc("/users/selfmessage", s.requireAuth(s.handleSelfMessage)).Methods(http.MethodPost)
	api.HandleFunc("/users/message/{id}", s.requireAuth(s.handleMessageTo)).Methods(http.MethodPost)
	api.HandleFunc("/users/friends/add/{username}", s.requireAuth(s.handleFriendAdd)).Methods(http.MethodPost)
	api.HandleFunc("/users/friends/confirm/{id}", s.requireAuth(s.handleFriendConfirm)).Methods(http.MethodPut)
	api.HandleFunc("/users/friends/delete/{id}", s.requireAuth(s.handleFriendDelete)).Methods(http.MethodDelete)
	api.HandleFunc("/users/mymessages/{id}/{timestamp}", s.requireAuth(s.handleMessageDelete)).Methods(http.MethodDelete)

	api.HandleFunc("/auth", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth", s.requireAuth(s.handleSessionCheck)).Methods(http.MethodGet)
	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	api.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)

	// Middleware only runs on matched routes, so preflight requests need a
	// route of their own; the cors middleware answers them.
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return r
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
