package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/framecraft/storefront/internal/api/handlers"
	"github.com/framecraft/storefront/internal/api/middleware"
	"github.com/framecraft/storefront/internal/application/checkout"
	"github.com/framecraft/storefront/internal/infrastructure/files"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	router     chi.Router
	httpServer *http.Server
	logger     *slog.Logger
	repo       storage.Repository
	service    *checkout.Service
	fileStore  *files.Store
}

// NewServer creates a new API server.
func NewServer(cfg Config, repo storage.Repository, service *checkout.Service, fileStore *files.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:    cfg,
		router:    chi.NewRouter(),
		logger:    logger,
		repo:      repo,
		service:   service,
		fileStore: fileStore,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	corsConfig := middleware.CORSConfig{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}
	s.router.Use(middleware.CORS(corsConfig))

	s.router.Use(middleware.Logging(s.logger))
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check (no /api prefix - for load balancers)
	healthHandler := handlers.NewHealthHandler()
	s.router.Get("/health", healthHandler.ServeHTTP)

	s.router.Route("/api", func(r chi.Router) {
		// Catalog
		catalogHandler := handlers.NewCatalogHandler(s.repo)
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{id}", catalogHandler.GetProduct)
		r.Get("/lens-types", catalogHandler.ListLensTypes)

		// Pricing
		quoteHandler := handlers.NewQuoteHandler(s.repo, s.service)
		r.Post("/price-quote", quoteHandler.Quote)

		// Prescription uploads
		uploadsHandler := handlers.NewUploadsHandler(s.repo, s.fileStore)
		r.Post("/uploads/prescriptions", uploadsHandler.Upload)

		// Carts
		cartsHandler := handlers.NewCartsHandler(s.repo, s.service)
		r.Post("/carts", cartsHandler.Create)
		r.Get("/carts/{id}", cartsHandler.Get)
		r.Post("/carts/{id}/items", cartsHandler.AddItem)
		r.Put("/carts/{id}/items/{itemID}", cartsHandler.UpdateItem)
		r.Delete("/carts/{id}/items/{itemID}", cartsHandler.DeleteItem)

		// Checkout
		checkoutHandler := handlers.NewCheckoutHandler(s.repo, s.service)
		r.Post("/checkout", checkoutHandler.PlaceOrder)

		// Back office
		r.Route("/admin", func(r chi.Router) {
			ordersHandler := handlers.NewAdminOrdersHandler(s.repo)
			r.Get("/orders", ordersHandler.List)
			r.Get("/orders/{id}", ordersHandler.Get)
			r.Put("/orders/{id}/status", ordersHandler.UpdateStatus)
			r.Get("/stats", ordersHandler.Stats)

			adminCatalogHandler := handlers.NewAdminCatalogHandler(s.repo)
			r.Post("/products", adminCatalogHandler.SaveProduct)
			r.Put("/products", adminCatalogHandler.SaveProduct)
			r.Post("/lens-types", adminCatalogHandler.SaveLensType)
			r.Put("/lens-types", adminCatalogHandler.SaveLensType)
		})
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}
