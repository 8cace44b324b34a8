package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	DeviceID      string `json:"device_id"`
	CandidateName string `json:"candidate_name"`
	OS            string `json:"os"`
	Token         string `json:"token"`
}

func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.DeviceID == "" || req.CandidateName == "" || req.OS == "" || req.Token == "" {
		http.Error(w, "device_id, candidate_name, os and token are required", http.StatusBadRequest)
		return
	}

	input := ports.CastVoteInput{
		DeviceID:      req.DeviceID,
		CandidateName: req.CandidateName,
		Platform:      req.OS,
		Token:         req.Token,
	}

	if err := h.service.Cast(r.Context(), input); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Storage detail stays in the logs, not in the response.
		slog.Error("failed to record vote", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
