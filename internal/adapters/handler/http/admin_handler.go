package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type AdminHandler struct {
	service ports.CandidateService
}

func NewAdminHandler(service ports.CandidateService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

type deleteCandidateRequest struct {
	Name string `json:"name"`
}

// DeleteCandidate runs behind RequireAdminKey. Deleting a name that
// does not exist still returns 200.
func (h *AdminHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	var req deleteCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(r.Context(), req.Name); err != nil {
		slog.Error("failed to delete candidate", "name", req.Name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
