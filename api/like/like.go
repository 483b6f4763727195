package like

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nikhildhanda04/vmatch/api"
	"github.com/nikhildhanda04/vmatch/db/model"
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

func (h *Handlers) submit(w http.ResponseWriter, r *http.Request) {
	u := api.CurrentUser(r)
	var body InSubmitLike
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ToID == nil || body.Status == nil {
		api.WriteJSON(w, http.StatusBadRequest, api.Error{Error: "Invalid request data"})
		return
	}
	mutual, err := h.svc.SubmitAction(r.Context(), u.ID, *body.ToID, model.LikeStatus(*body.Status))
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, OutActionResult{Success: true, IsMutualMatch: mutual})
}

func (h *Handlers) respond(w http.ResponseWriter, r *http.Request) {
	u := api.CurrentUser(r)
	var body InRespondLike
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.LikeID == nil || body.Status == nil {
		api.WriteJSON(w, http.StatusBadRequest, api.Error{Error: "Invalid request data"})
		return
	}
	mutual, err := h.svc.RespondToLike(r.Context(), u.ID, *body.LikeID, model.LikeStatus(*body.Status))
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, OutActionResult{Success: true, IsMutualMatch: mutual})
}

func (h *Handlers) incoming(w http.ResponseWriter, r *http.Request) {
	u := api.CurrentUser(r)
	likes, err := h.svc.IncomingLikes(r.Context(), u.ID)
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	out := make([]OutIncomingLike, 0, len(likes))
	for _, l := range likes {
		out = append(out, OutIncomingLike{LikeID: l.ID, User: l.From, CreatedAt: l.CreatedAt})
	}
	api.WriteJSON(w, http.StatusOK, out)
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/likes", func(r chi.Router) {
		r.Use(h.authn)
		r.Get("/", h.incoming)
		r.Post("/", h.submit)
		r.Post("/respond", h.respond)
	})
}
