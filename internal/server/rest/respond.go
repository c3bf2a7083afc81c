package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pingreng/pingr-server/internal/shared"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// writeError translates service errors into the response taxonomy:
// validation and conflict become 400 with the specific message, not-found
// 404, unauthorized 401, and everything else a logged generic 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrConflict):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrUnauthorized):
		respondMessage(w, http.StatusUnauthorized, err.Error())
	default:
		s.logger.Error(r.Context(), err.Error(), "path", r.URL.Path)
		respondMessage(w, http.StatusInternalServerError, "Could not connect to the server.")
	}
}
