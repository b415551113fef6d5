package router

import (
	"net/http"
	"time"

	"clefmusic-api/internal/config"
	"clefmusic-api/internal/db"
	"clefmusic-api/internal/handlers"
	"clefmusic-api/internal/middleware"
	"clefmusic-api/internal/services"
	"clefmusic-api/internal/sessions"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(database *db.DB, store sessions.Store, cfg config.Config, logger zerolog.Logger) *mux.Router {
	accountService := services.NewAccountService(database, logger, cfg.AdminEmail)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.SessionTTL, logger)
	mailer := services.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, logger)
	sessionService := services.NewSessionService(accountService, tokenService, store, mailer, logger, cfg.AdminEmail, cfg.AdminPassword)
	submissionService := services.NewSubmissionService(database, logger)
	productService := services.NewProductService(database, logger)
	dashboardService := services.NewDashboardService(database, logger)

	authHandler := handlers.NewAuthHandler(sessionService, logger)
	accountHandler := handlers.NewAccountHandler(accountService, logger)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.PerformanceMonitoring(logger, 500*time.Millisecond))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api/v1").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(middleware.RequestValidation())
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")

	protectedAuth := auth.PathPrefix("").Subrouter()
	protectedAuth.Use(middleware.Authentication(tokenService, store, logger))
	protectedAuth.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	protectedAuth.HandleFunc("/session", authHandler.Session).Methods("GET")

	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(middleware.Authentication(tokenService, store, logger))
	profile.HandleFunc("", accountHandler.GetProfile).Methods("GET")
	profile.HandleFunc("", accountHandler.UpdateProfile).Methods("PUT")

	// Visitor submissions need no account.
	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.RequestValidation())
	public.HandleFunc("/service-requests", submissionHandler.CreateServiceRequest).Methods("POST")
	public.HandleFunc("/contact-messages", submissionHandler.CreateContactMessage).Methods("POST")
	public.HandleFunc("/brochure-requests", submissionHandler.CreateBrochureRequest).Methods("POST")

	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Get).Methods("GET")

	// Catalog mutations and the dashboard are admin only, enforced
	// server-side.
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Authentication(tokenService, store, logger))
	admin.Use(middleware.RequireRole("admin"))
	admin.HandleFunc("/products", productHandler.Create).Methods("POST")
	admin.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	admin.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/admin/dashboard", dashboardHandler.GetDashboard).Methods("GET")
	admin.HandleFunc("/admin/accounts", accountHandler.ListAccounts).Methods("GET")
	admin.HandleFunc("/admin/service-requests", submissionHandler.ListServiceRequests).Methods("GET")
	admin.HandleFunc("/admin/service-requests/{id}/status", submissionHandler.UpdateServiceRequestStatus).Methods("PUT")
	admin.HandleFunc("/admin/contact-messages", submissionHandler.ListContactMessages).Methods("GET")
	admin.HandleFunc("/admin/contact-messages/{id}/status", submissionHandler.UpdateContactMessageStatus).Methods("PUT")
	admin.HandleFunc("/admin/brochure-requests", submissionHandler.ListBrochureRequests).Methods("GET")
	admin.HandleFunc("/admin/brochure-requests/{id}/status", submissionHandler.UpdateBrochureRequestStatus).Methods("PUT")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
