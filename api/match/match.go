package match

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nikhildhanda04/vmatch/api"
	"github.com/nikhildhanda04/vmatch/matching"
)

type Handlers struct {
	logger *log.Logger
	svc    *matching.Service
	authn  func(http.Handler) http.Handler
}

func NewHandlers(logger *log.Logger, svc *matching.Service, authn func(http.Handler) http.Handler) *Handlers {
	return &Handlers{logger: logger, svc: svc, authn: authn}
}

// list maps each match to the participant that is not the caller, the shape
// the conversation list renders from.
func (h *Handlers) list(w http.ResponseWriter, r *http.Request) {
	u := api.CurrentUser(r)
	matches, err := h.svc.Matches(r.Context(), u.ID)
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	out := make([]OutMatch, 0, len(matches))
	for _, m := range matches {
		other := m.User2
		if m.User2ID == u.ID {
			other = m.User1
		}
		out = append(out, OutMatch{MatchID: m.ID, User: other, CreatedAt: m.CreatedAt})
	}
	api.WriteJSON(w, http.StatusOK, out)
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/matches", func(r chi.Router) {
		r.Use(h.authn)
		r.Get("/", h.list)
	})
}
