package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/nikhildhanda04/vmatch/auth"
	"github.com/nikhildhanda04/vmatch/db/model"
)

// Authenticator resolves the caller's identity from a bearer access token
// and loads the matching user into the request context under "user".
// Every operation behind it requires a resolved identity.
func Authenticator(logger *log.Logger, secret []byte, gdb *gorm.DB) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			uid, err := auth.ParseAccessToken(secret, raw)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			var u model.User
			if err := gdb.WithContext(r.Context()).First(&u, "id = ?", uid).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					w.WriteHeader(http.StatusForbidden)
				} else {
					logger.Println(err)
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}
			ctx := context.WithValue(r.Context(), "user", &u)
			h.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie("accessToken"); err == nil {
		return c.Value
	}
	return ""
}
