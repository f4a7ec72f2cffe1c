// Package server provides the HTTP API: invoice processing uploads and
// the stored-invoice collection.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/suporteverde/invoice-batch/internal/common"
	"github.com/suporteverde/invoice-batch/internal/invoice"
	"github.com/suporteverde/invoice-batch/internal/repository"
)

// Server is the HTTP server for the invoice API.
type Server struct {
	processor  *invoice.Service
	repo       repository.InvoiceRepository
	cfg        *common.Config
	logger     *slog.Logger
	router     *chi.Mux
	server     *http.Server
	saveSchema *jsonschema.Schema
}

func NewServer(processor *invoice.Service, repo repository.InvoiceRepository, cfg *common.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	schema, err := compileSaveSchema()
	if err != nil {
		return nil, err
	}
	s := &Server{
		processor:  processor,
		repo:       repo,
		cfg:        cfg,
		logger:     logger,
		router:     chi.NewRouter(),
		saveSchema: schema,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.Server.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/notas", s.handleListInvoices)
		r.Post("/notas", s.handleSaveInvoices)
		r.Put("/notas/{id}", s.handleUpdateInvoice)
		r.Post("/processar-notas", s.handleProcessUpload)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.logger.Info("http server listening", "addr", addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
