package http

import (
	"net/http"
	"time"
)

// NewMux creates router for the web frontend.
func NewMux(service Service, timeout time.Duration) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	m := http.NewServeMux()
	m.HandleFunc("/", NewIndexHandler())
	m.HandleFunc("/api/search", timeoutMiddleware(NewSearchHandler(service)))

	return m
}
