package http

import (
	"context"
	"net/http"
	"time"
)

// NewTimeoutMiddleware creates middleware bounding each search request with a
// deadline. Searches can fan out into many github api calls, so the wrapped
// handler runs with a context that is canceled after the given time.
func NewTimeoutMiddleware(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			h(w, r.WithContext(ctx))
		}
	}
}
