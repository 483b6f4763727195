package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nikhildhanda04/vmatch/chat"
	"github.com/nikhildhanda04/vmatch/db/model"
	"github.com/nikhildhanda04/vmatch/matching"
)

// CurrentUser returns the authenticated user placed on the context by
// middleware.Authenticator.
func CurrentUser(r *http.Request) *model.User {
	u, _ := r.Context().Value("user").(*model.User)
	return u
}

type Error struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError maps domain errors onto the response contract: quota and
// conflict failures keep their specific human-readable messages, anything
// unexpected degrades to a generic retry message without leaking internals.
func WriteError(w http.ResponseWriter, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, matching.ErrInvalidStatus),
		errors.Is(err, matching.ErrSelfAction),
		errors.Is(err, chat.ErrEmptyText):
		WriteJSON(w, http.StatusBadRequest, Error{err.Error()})
	case errors.Is(err, matching.ErrQuotaExceeded):
		WriteJSON(w, http.StatusTooManyRequests, Error{"You've reached your 10 like limit for today. Come back tomorrow!"})
	case errors.Is(err, matching.ErrUserNotFound),
		errors.Is(err, matching.ErrLikeNotFound),
		errors.Is(err, chat.ErrMatchNotFound):
		WriteJSON(w, http.StatusNotFound, Error{err.Error()})
	case errors.Is(err, matching.ErrAlreadyResolved):
		WriteJSON(w, http.StatusConflict, Error{"Like has already been responded to"})
	case errors.Is(err, chat.ErrNotParticipant):
		WriteJSON(w, http.StatusForbidden, Error{"Unauthorized"})
	default:
		logger.Println(err)
		WriteJSON(w, http.StatusInternalServerError, Error{"Something went wrong. Please try again."})
	}
}
