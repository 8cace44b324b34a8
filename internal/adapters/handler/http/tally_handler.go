package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type TallyHandler struct {
	service ports.TallyService
}

func NewTallyHandler(service ports.TallyService) *TallyHandler {
	return &TallyHandler{
		service: service,
	}
}

func (h *TallyHandler) GetPercentages(w http.ResponseWriter, r *http.Request) {
	shares, err := h.service.Percentages(r.Context())
	if err != nil {
		slog.Error("failed to compute percentages", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(shares); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
