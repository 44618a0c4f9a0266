// Package httpapi is the HTTP surface of the dispatch engine. It owns the
// wire format; all semantics live in the controller.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/kris27x/ElevatorControlSystem/internal/controller"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	ctrl     *controller.Controller
	log      zerolog.Logger
	instance string
	srv      *http.Server
}

func NewServer(ctrl *controller.Controller, addr, instance string, log zerolog.Logger) *Server {
	s := &Server{
		ctrl:     ctrl,
		log:      log.With().Str("component", "httpapi").Logger(),
		instance: instance,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.withRequestLog(s.routes()),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("PUT /api/config", s.handleConfigure)
	mux.HandleFunc("POST /api/pickup", s.handlePickup)
	mux.HandleFunc("POST /api/elevators/{id}/targets", s.handleAddTarget)
	mux.HandleFunc("POST /api/step", s.handleStep)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return mux
}

// Handler exposes the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to shutdownTimeout before returning.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.srv.Addr).Msg("http server listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
