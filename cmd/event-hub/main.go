package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventHub/internal/auth"
	"eventHub/internal/config"
	"eventHub/internal/http-server/handlers/admin/dashboard"
	"eventHub/internal/http-server/handlers/admin/setRole"
	"eventHub/internal/http-server/handlers/category/createCategory"
	"eventHub/internal/http-server/handlers/category/listCategories"
	"eventHub/internal/http-server/handlers/event/createEvent"
	"eventHub/internal/http-server/handlers/event/getEvent"
	"eventHub/internal/http-server/handlers/event/listEvents"
	"eventHub/internal/http-server/handlers/event/register"
	"eventHub/internal/http-server/handlers/event/updateEvent"
	"eventHub/internal/http-server/handlers/payment/myPayments"
	"eventHub/internal/http-server/handlers/payment/processPayment"
	"eventHub/internal/http-server/handlers/registration/cancelRegistration"
	"eventHub/internal/http-server/handlers/user/getProfile"
	"eventHub/internal/http-server/handlers/user/login"
	"eventHub/internal/http-server/handlers/user/logout"
	"eventHub/internal/http-server/handlers/user/myEvents"
	"eventHub/internal/http-server/handlers/user/signUp"
	"eventHub/internal/http-server/handlers/user/updateProfile"
	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/http-server/middleware/mwlogger"
	"eventHub/internal/lib/logger/handlers/slogpretty"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/payment"
	"eventHub/internal/services/accounts"
	"eventHub/internal/services/events"
	"eventHub/internal/services/registrations"
	"eventHub/internal/storage/postgres"
	"eventHub/internal/storage/sqlite"
	"eventHub/internal/storage/sqlstore"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event hub", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("Debug messages are enabled")

	storage, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	bank := payment.NewSimulator(cfg.Payments.Currency, cfg.Payments.BankName)
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	registrationService := registrations.New(log, storage, bank, cfg.Payments.CancelCutoff)
	eventService := events.New(log, storage, cfg.Payments.CancelCutoff)
	accountService := accounts.New(log, storage, tokens)

	if admin := cfg.Auth.BootstrapAdmin; admin.Username != "" {
		if _, err = accountService.EnsureAdmin(context.Background(), accounts.SignUpInput{
			Username: admin.Username,
			Email:    admin.Email,
			Password: admin.Password,
		}); err != nil {
			log.Error("failed to ensure admin account", sl.Err(err))
			os.Exit(1)
		}
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwauth.New(log, accountService, cfg.Auth.CookieName))

	router.Get("/events", listEvents.New(log, eventService))
	router.Get("/events/{id}", getEvent.New(log, eventService))
	router.Get("/categories", listCategories.New(log, eventService))

	router.Post("/users/register", signUp.New(log, accountService))
	router.Post("/users/login", login.New(log, accountService, cfg.Auth.CookieName))
	router.Post("/users/logout", logout.New(log, cfg.Auth.CookieName))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.Required)

		r.Post("/events", createEvent.New(log, eventService))
		r.Put("/events/{id}", updateEvent.New(log, eventService))
		r.Post("/events/{id}/register", register.New(log, registrationService))
		r.Post("/payments/{id}", processPayment.New(log, registrationService))
		r.Post("/registrations/{id}/cancel", cancelRegistration.New(log, registrationService))

		r.Get("/me/events", myEvents.New(log, eventService))
		r.Get("/me/payments", myPayments.New(log, registrationService))

		r.Get("/users/profile", getProfile.New(log, accountService))
		r.Put("/users/profile", updateProfile.New(log, accountService))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.AdminOnly)

			r.Post("/categories", createCategory.New(log, eventService))
			r.Get("/admin/dashboard", dashboard.New(log, accountService))
			r.Put("/admin/users/{id}/role", setRole.New(log, accountService))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	if cfg.Payments.PendingTTL > 0 {
		go runSweeper(sweepCtx, log, registrationService, cfg.Payments.PendingTTL, cfg.Payments.SweepInterval)
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	stopSweeper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config) (*sqlstore.Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		return postgres.InitDB(&cfg.Database)
	case "sqlite":
		return sqlite.Open(cfg.Storage.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// runSweeper fails payments left pending longer than ttl.
func runSweeper(ctx context.Context, log *slog.Logger, svc *registrations.Service, ttl, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := svc.ExpireStalePayments(ctx, ttl); err != nil {
				log.Error("failed to expire stale payments", sl.Err(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
