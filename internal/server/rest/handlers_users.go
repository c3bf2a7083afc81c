package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pingreng/pingr-server/internal/server/auth"
	"github.com/pingreng/pingr-server/internal/server/messages"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
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
	w.Header().Set("x-auth-token", token)
	w.Header().Set("Access-Control-Expose-Headers", "x-auth-token")
	respondJSON(w, http.StatusOK, map[string]string{
		"username": user.Username,
		"email":    user.Email,
	})
}

// handleGetOwn returns the caller's friends and decrypted messages. Listing
// messages also drops anything past the 30-day retention.
func (s *Server) handleGetOwn(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	msgs, err := s.messages.ListAndExpire(r.Context(), claims.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	links, err := s.friends.List(r.Context(), claims.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"messages": msgs,
		"friends":  links,
	})
}

type messageRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (s *Server) handleSelfMessage(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	sender := messages.Sender{ID: claims.UserID, Username: claims.Username}
	if err := s.messages.SendSelf(r.Context(), sender, req.Title, req.Text); err != nil {
		s.writeError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Message sent.")
}

func (s *Server) handleMessageTo(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	recipientID := mux.Vars(r)["id"]

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	sender := messages.Sender{ID: claims.UserID, Username: claims.Username}
	if err := s.messages.SendTo(r.Context(), sender, recipientID, req.Title, req.Text); err != nil {
		s.writeError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Message sent.")
}

func (s *Server) handleMessageDelete(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	vars := mux.Vars(r)

	timeMS, err := strconv.ParseInt(vars["timestamp"], 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid timestamp.")
		return
	}

	if err := s.messages.Delete(r.Context(), claims.UserID, vars["id"], timeMS); err != nil {
		s.writeError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Message deleted.")
}

func (s *Server) handleFriendAdd(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	targetUsername := mux.Vars(r)["username"]

	if err := s.friends.Request(r.Context(), claims.UserID, claims.Username, targetUsername); err != nil {
		s.writeError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Friend request sent.")
}

func (s *Server) handleFriendConfirm(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	peerID := mux.Vars(r)["id"]

	if err := s.friends.Confirm(r.Context(), claims.UserID, peerID); err != nil {
		s.writeError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Friend request confirmed.")
}

func (s *Server) handleFriendDelete(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	peerID := mux.Vars(r)["id"]

	if err := s.friends.Remove(r.Context(), claims.UserID, peerID); err != nil {
		s.writeError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Friend removed.")
}
