package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
)

// Server serves the web frontend.
type Server struct {
	addr    string
	handler http.Handler
	l       logrus.FieldLogger
}

// NewServer creates new Server instance.
func NewServer(addr string, handler http.Handler, l logrus.FieldLogger) *Server {
	return &Server{
		addr:    addr,
		handler: handler,
		l:       l,
	}
}

// Run runs the server. Waits until SIGINT is received, then gracefully shutdowns.
// Returns early when the server fails to serve, so a bad listen address
// doesn't leave the process hanging. Blocks until shutdown is complete.
func (s *Server) Run() {
	srv := http.Server{
		Addr: s.addr,

		ReadHeaderTimeout: time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      70 * time.Second,
		IdleTimeout:       10 * time.Second,

		Handler: s.handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		s.l.Infof("serving search page on http://%s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		s.l.Errorf("server returned error: %v", err)
		return
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && err != http.ErrServerClosed {
		s.l.Errorf("server shutdown returned error: %v", err)
	}
}
