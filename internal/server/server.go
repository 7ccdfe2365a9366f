// Package server exposes the gateway's single inbound HTTP surface: the
// root help page plus the catch-all relay route that resolves a request
// path, fetches the matching upstream document, and relays it back.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/loregate/loregate/internal/config"
	"github.com/loregate/loregate/internal/upstream"
)

// Server holds the per-process gateway state. Everything in it is immutable
// after New; requests share no mutable state and need no locking.
type Server struct {
	cfg        *config.Config
	client     *upstream.Client
	help       HelpPayload
	httpServer *http.Server
}

// New creates a gateway server from the loaded configuration.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		client: upstream.NewClient(cfg.RequestTimeout, cfg.MaxResponseSize),
		help:   buildHelp(),
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the route table. Split out from Start so tests can drive
// the server through httptest without opening a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRelay)
	return mux
}

// Start serves inbound requests until Shutdown is called. A closed-server
// result is a clean exit, not an error.
func (s *Server) Start() error {
	logrus.WithField("listen", s.cfg.Listen).Info("[Gateway] listening")
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
