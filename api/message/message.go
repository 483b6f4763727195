package message

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nikhildhanda04/vmatch/api"
	"github.com/nikhildhanda04/vmatch/chat"
	"github.com/nikhildhanda04/vmatch/middleware"
)

type Handlers struct {
	logger *log.Logger
	store  *chat.Store
	authn  func(http.Handler) http.Handler
}

func NewHandlers(logger *log.Logger, store *chat.Store, authn func(http.Handler) http.Handler) *Handlers {
	return &Handlers{logger: logger, store: store, authn: authn}
}

func (h *Handlers) list(w http.ResponseWriter, r *http.Request) {
	u := api.CurrentUser(r)
	matchID := r.URL.Query().Get("matchId")
	if matchID == "" {
		api.WriteJSON(w, http.StatusBadRequest, api.Error{Error: "Match ID is required"})
		return
	}
	msgs, err := h.store.ListMessages(r.Context(), matchID, u.ID)
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, msgs)
}

func (h *Handlers) send(w http.ResponseWriter, r *http.Request) {
	u := api.CurrentUser(r)
	var body InSendMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.MatchID == nil || body.Text == nil {
		api.WriteJSON(w, http.StatusBadRequest, api.Error{Error: "Match ID and text are required"})
		return
	}
	msg, err := h.store.SendMessage(r.Context(), *body.MatchID, u.ID, *body.Text)
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, msg)
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/messages", func(r chi.Router) {
		r.Use(h.authn, middleware.NoCache)
		r.Get("/", h.list)
		r.Post("/", h.send)
	})
}
