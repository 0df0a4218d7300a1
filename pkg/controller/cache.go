package controller

import "net/http"

// WithCacheControl sets a default Cache-Control header before calling next.
// Handlers may still override it, e.g. to disable caching on errors.
func WithCacheControl(value string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", value)

		next.ServeHTTP(w, r)
	})
}
