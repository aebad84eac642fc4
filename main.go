// File: /main.go
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

	"github.com/gin-gonic/gin"
	"gopkg.in/gomail.v2"

	"sportsbuddy-api/config"
	"sportsbuddy-api/controllers"
	"sportsbuddy-api/database"
	"sportsbuddy-api/jobs"
	"sportsbuddy-api/middleware"
	"sportsbuddy-api/models"
	"sportsbuddy-api/repositories"
	"sportsbuddy-api/routes"
	"sportsbuddy-api/services"
	"sportsbuddy-api/services/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eventStore, userStore, closeStore, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	notifier := services.MultiNotifier{services.NewLogNotifier(log)}
	if cfg.Mail.Enabled {
		dialer := gomail.NewDialer(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUsername, cfg.Mail.SMTPPassword)
		mailJob := jobs.NewMailDispatchJob(dialer, cfg.Mail.FlushInterval, cfg.Mail.QueueSize, cfg.Mail.BatchSize, log)
		mailJob.Start()
		defer mailJob.Stop()

		notifier = append(notifier, services.NewMailNotifier(mailJob, services.MailOptions{
			FromEmail:  cfg.Mail.FromEmail,
			FromName:   cfg.Mail.FromName,
			Severities: []models.Severity{models.SeveritySuccess, models.SeverityInfo},
		}, log))
	}

	authService := services.NewAuthService(userStore, services.AuthOptions{
		Secret:                     cfg.Auth.JWTSecret,
		TokenTTL:                   cfg.Auth.TokenTTL,
		AllowAdminSelfRegistration: cfg.Auth.AllowAdminSelfRegistration,
	}, time.Now, log)

	if cfg.Auth.AdminEmail != "" {
		if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, cfg.Auth.AdminName); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
	}

	eventService := services.NewEventService(eventStore, time.Now, log)
	membershipService := services.NewMembershipService(eventStore, time.Now, log)
	catalogService := services.NewCatalogService(eventStore)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(routes.SetupCORS())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))
	router.Use(middleware.ErrorHandler(log))

	routes.SetupRoutes(router, routes.Controllers{
		Auth:   controllers.NewAuthController(authService, notifier, log),
		Events: controllers.NewEventController(eventService, membershipService, catalogService, notifier, time.Now, log),
	}, authService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting SportsBuddy API server", "port", cfg.Port, "store", cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (ports.EventStore, ports.UserStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverRedis:
		client, err := repositories.NewRedisClient(ctx, cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Warn("failed to close redis client", "error", err)
			}
		}
		return repositories.NewRedisEventRepository(client), repositories.NewRedisUserRepository(client), closeFn, nil

	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return repositories.NewMemoryEventRepository(time.Now), repositories.NewMemoryUserRepository(time.Now), func() {}, nil
	}

	db, err := database.Initialize(cfg.Store.DatabaseURL, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := database.Migrate(db, log); err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return repositories.NewEventRepository(db), repositories.NewUserRepository(db), closeFn, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
