package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

func loggingMiddleware(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.InfoContext(
				r.Context(),
				"request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func NewRouter(handler Handler, logger Logger, config Config) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.Recoverer)
	if config.Timeout > 0 {
		router.Use(middleware.Timeout(config.Timeout))
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusOK, "OK")
	})

	router.Post("/transfers", handler.PostTransfers)
	router.Get("/transfers/{id}", handler.GetTransfer)
	router.Get("/accounts", handler.GetAccounts)

	return router
}

type Server struct {
	httpServer *http.Server
	logger     Logger
}

func NewServer(handler Handler, logger Logger, config Config) *Server {
	httpServer := &http.Server{
		Addr:         config.Address,
		Handler:      NewRouter(handler, logger, config),
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	}

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
