package rest

import (
	"errors"
	"net/http"

	"github.com/pingreng/pingr-server/internal/shared"
)

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	full, err := s.versions.Get(r.Context(), s.versionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Version was not found.")
			return
		}
		s.writeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"version": full})
}
