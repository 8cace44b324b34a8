package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
)

func NewHandler(voteHandler *VoteHandler, tallyHandler *TallyHandler, adminHandler *AdminHandler, gate ports.AdminGate) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("welcome"))
	})

	r.Post("/vote", voteHandler.CastVote)
	r.Get("/percentage", tallyHandler.GetPercentages)

	r.Group(func(r chi.Router) {
		r.Use(RequireAdminKey(gate))
		r.Delete("/candidate", adminHandler.DeleteCandidate)
	})

	return r
}
