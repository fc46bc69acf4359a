package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"uploadcheck/internal/application"
	"uploadcheck/internal/config"
	"uploadcheck/internal/infrastructure/i18n"
	"uploadcheck/internal/ports/output"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP adapter.
type Server struct {
	http    *http.Server
	config  *config.Config
	handler *Handler
}

// NewServer creates a Server and wires ports: output adapters -> application (use cases) -> handler.
func NewServer(cfg *config.Config, profiles output.ProfileStore, catalog *i18n.Catalog) (*Server, error) {
	uploadUC := application.NewUploadService(profiles)

	handler, err := NewHandler(uploadUC, catalog, cfg.LangCookie)
	if err != nil {
		return nil, fmt.Errorf("web: templates: %w", err)
	}

	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       60 * time.Second,
		},
		config:  cfg,
		handler: handler,
	}, nil
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		log.Printf("web: listening on %s", s.config.Addr)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	log.Println("web: stopped")
	return nil
}
