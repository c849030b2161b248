package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type DormFinderHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	srv       *http.Server
	logger    *slog.Logger
}

func NewDormFinderHttpServer(router *Router, muxRouter *mux.Router, port int, logger *slog.Logger) *DormFinderHttpServer {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &DormFinderHttpServer{
		router:    router,
		muxRouter: muxRouter,
		srv:       srv,
		logger:    logger,
	}
}

// Start registers the routes and serves until Shutdown is called.
func (s *DormFinderHttpServer) Start() error {
	s.router.RegisterRoutes()

	s.logger.Info("[DormFinderHttpServer] Starting server", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ListenAndServe(): %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx is done.
func (s *DormFinderHttpServer) Shutdown(ctx context.Context) error {
	s.logger.Info("[DormFinderHttpServer] Shutting down the server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("[DormFinderHttpServer] Server exiting")
	return nil
}
