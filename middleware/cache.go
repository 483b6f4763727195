package middleware

import "net/http"

// NoCache keeps intermediaries from caching responses the client re-polls
// every few seconds.
func NoCache(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate;")
		w.Header().Set("pragma", "no-cache")
		h.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
