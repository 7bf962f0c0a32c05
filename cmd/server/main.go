package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	adminh "github.com/Alubalulu/sales-forecast-app/internal/http/handlers/admin"
	authh "github.com/Alubalulu/sales-forecast-app/internal/http/handlers/auth"
	forecasth "github.com/Alubalulu/sales-forecast-app/internal/http/handlers/forecast"
	rolluph "github.com/Alubalulu/sales-forecast-app/internal/http/handlers/rollup"

	"github.com/Alubalulu/sales-forecast-app/internal/http/authz"
	"github.com/Alubalulu/sales-forecast-app/internal/http/handlers"
	mw "github.com/Alubalulu/sales-forecast-app/internal/http/middleware"
	"github.com/Alubalulu/sales-forecast-app/internal/http/session"
	"github.com/Alubalulu/sales-forecast-app/internal/lib/config"
	"github.com/Alubalulu/sales-forecast-app/internal/lib/sl"
	"github.com/Alubalulu/sales-forecast-app/internal/oauth"
	repo "github.com/Alubalulu/sales-forecast-app/internal/repository"
	"github.com/Alubalulu/sales-forecast-app/internal/service/admin"
	"github.com/Alubalulu/sales-forecast-app/internal/service/auth"
	"github.com/Alubalulu/sales-forecast-app/internal/service/forecast"
	"github.com/Alubalulu/sales-forecast-app/internal/service/rollup"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting Sales Forecast Service", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		slog.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	if err := runMigrations(db, cfg.Migrations); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	whitelistRepo := repo.NewWhitelistRepo(db, trmsqlx.DefaultCtxGetter)
	forecastRepo := repo.NewForecastRepo(db, trmsqlx.DefaultCtxGetter)

	authService := auth.NewAuthService(trManager, userRepo, whitelistRepo)
	forecastService := forecast.NewForecastService(forecastRepo)
	rollupService := rollup.NewRollupService(forecastRepo)
	adminService := admin.NewAdminService(whitelistRepo)

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.CookieName)
	google := oauth.NewGoogle(cfg.OAuth.GoogleClientID, cfg.OAuth.GoogleClientSecret, cfg.OAuth.RedirectURL)

	authHandler := authh.NewAuthHandler(log, google, authService, sessions)
	forecastHandler := forecasth.NewForecastHandler(log, forecastService)
	rollupHandler := rolluph.NewRollupHandler(log, rollupService)
	adminHandler := adminh.NewAdminHandler(log, adminService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mw.Session(sessions, userRepo))
	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	// public methods
	router.Get("/health", handlers.Healthcheck())
	router.Get("/auth/google", authHandler.Login)
	router.Get("/auth/google/callback", authHandler.Callback)
	router.Get("/api/current_user", authHandler.CurrentUser)
	router.Get("/api/logout", authHandler.Logout)

	// authenticated methods, role checked per operation
	router.Group(func(r chi.Router) {
		r.Use(mw.Require(authz.OpSubmitForecast))
		r.Post("/api/forecast", forecastHandler.Submit)
	})

	router.Group(func(r chi.Router) {
		r.Use(mw.Require(authz.OpViewRollup))
		r.Get("/api/rollup", rollupHandler.Get)
	})

	router.Group(func(r chi.Router) {
		r.Use(mw.Require(authz.OpExportRollup))
		r.Get("/api/export", rollupHandler.Export)
	})

	router.Group(func(r chi.Router) {
		r.Use(mw.Require(authz.OpManageWhitelist))
		r.Post("/api/admin/whitelist", adminHandler.AddWhitelist)
	})

	// everything else is the SPA shell
	router.NotFound(handlers.SPA(cfg.Static.Dir))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func runMigrations(db *sqlx.DB, dir string) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
