// Package server wires the repositories, services and handlers behind the
// HTTP router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/veritable/veritable-go/internal/config"
	"github.com/veritable/veritable-go/internal/handler"
	"github.com/veritable/veritable-go/internal/middleware"
	"github.com/veritable/veritable-go/internal/repository"
	"github.com/veritable/veritable-go/internal/service"
	"github.com/veritable/veritable-go/internal/storage"
)

// Rate limits translated from the original 15-minute windows: 100 requests
// per window globally, 5 per window on the credential routes.
const (
	globalRPS   = 100.0 / (15 * 60)
	globalBurst = 100
	authRPS     = 5.0 / (15 * 60)
	authBurst   = 5
)

// Server holds the assembled router.
type Server struct {
	router chi.Router
}

// New builds the full application around the given database handle.
func New(cfg config.Config, db *gorm.DB) (*Server, error) {
	uploads, err := storage.NewUploads(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	users := repository.NewUserRepository(db)
	admins := repository.NewAdminRepository(db)
	pubs := repository.NewPublicationRepository(db)

	dev := cfg.IsDevelopment()
	authHandler := handler.NewAuthHandler(
		service.NewAuthService(users, admins, cfg.JWTSecret, cfg.JWTExpiry), dev)
	pubHandler := handler.NewPublicationHandler(
		service.NewPublicationService(pubs), uploads, dev)
	paymentHandler := handler.NewPaymentHandler(
		service.NewSubscriptionService(users), dev)
	statsHandler := handler.NewStatsHandler(
		service.NewStatsService(pubs, admins), dev)
	userHandler := handler.NewUserHandler(
		service.NewUserService(users), dev)

	r := chi.NewRouter()
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Recover)
	r.Use(middleware.RateLimit(globalRPS, globalBurst))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"route not found"}`))
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Credential routes sit behind the stricter limiter.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(authRPS, authBurst))
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
	})

	// Public reads.
	r.Get("/publications", pubHandler.HandleList)
	r.Get("/publications/{id}", pubHandler.HandleGet)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	// Everything below requires a valid bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/auth/me", authHandler.HandleMe)
		r.Post("/payments/subscribe", paymentHandler.HandleSubscribe)
		r.Post("/publications", pubHandler.HandleCreate)
		r.Put("/publications/{id}", pubHandler.HandleUpdate)
		r.Delete("/publications/{id}", pubHandler.HandleDelete)
		r.Get("/admin/stats", statsHandler.HandleStats)
		r.Get("/users", userHandler.HandleList)
		r.Delete("/users/{id}", userHandler.HandleDelete)
	})

	return &Server{router: r}, nil
}

// Router returns the http.Handler serving the API.
func (s *Server) Router() http.Handler {
	return s.router
}
