package device

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/nikhildhanda04/vmatch/api"
	"github.com/nikhildhanda04/vmatch/db/model"
	"github.com/nikhildhanda04/vmatch/middleware"
)

type Handlers struct {
	logger *log.Logger
	db     *gorm.DB
	authn  func(http.Handler) http.Handler
}

func NewHandlers(logger *log.Logger, gdb *gorm.DB, authn func(http.Handler) http.Handler) *Handlers {
	return &Handlers{logger: logger, db: gdb, authn: authn}
}

// register stores the device's Expo push token so the notification worker
// can reach this user.
func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	u := api.CurrentUser(r)
	token := r.Context().Value("expoPushToken").(string)
	if err := h.db.WithContext(r.Context()).
		Model(&model.User{}).
		Where("id = ?", u.ID).
		Update("expo_push_token", token).
		Error; err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/devices", func(r chi.Router) {
		r.Use(h.authn, middleware.WithExpoPushToken)
		r.Put("/", h.register)
	})
}
