package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/outliner/internal/outline"
)

type navigateRequest struct {
	NodeID string `json:"node_id"`
}

// handleNavigate resolves a node id against a session's document snapshot
// and selects the paragraph it points at. The snapshot may be stale
// relative to the live document; out-of-range positions report 410.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := outline.NavigateToNode(req.NodeID, sess); err != nil {
		switch {
		case errors.Is(err, outline.ErrInvalidIdentifier):
			jsonError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, outline.ErrPositionOutOfRange):
			jsonError(w, err.Error(), http.StatusGone)
		default:
			jsonError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	position := sess.Selected()
	resp := map[string]any{
		"node_id":  req.NodeID,
		"position": position,
	}
	if heading, ok := sess.HeadingAt(position); ok {
		resp["text"] = heading.Text
		resp["level"] = heading.Level
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
