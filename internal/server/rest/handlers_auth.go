package rest

import (
	"encoding/json"
	"net/http"

	"github.com/pingreng/pingr-server/internal/server/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	token, err := auth.Issue(user.ID, user.Username, user.Email, s.jwtSecret)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.setSessionCookies(w, token)
	respondMessage(w, http.StatusOK, "Logged In")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookies(w)
	respondMessage(w, http.StatusOK, "Logged Out")
}

func (s *Server) handleSessionCheck(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "User is logged in.")
}
