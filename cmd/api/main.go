package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/aikombin/aikombin-server/docs/swagger"
	"github.com/aikombin/aikombin-server/pkg/app"
	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/cache"
	"github.com/aikombin/aikombin-server/pkg/config"
	"github.com/aikombin/aikombin-server/pkg/database"
	"github.com/aikombin/aikombin-server/pkg/events"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	"github.com/aikombin/aikombin-server/pkg/logger"
	"github.com/aikombin/aikombin-server/pkg/mailer"
	"github.com/aikombin/aikombin-server/pkg/recordstore"
	"github.com/aikombin/aikombin-server/pkg/storage"
	"github.com/aikombin/aikombin-server/pkg/telemetry"
	"github.com/aikombin/aikombin-server/pkg/workflows"
	closetApi "github.com/aikombin/aikombin-server/services/closet/application/api"
	identityApi "github.com/aikombin/aikombin-server/services/identity/application/api"
	outfitApi "github.com/aikombin/aikombin-server/services/outfit/application/api"
)

// @title					AIKombin API
// @version				1.0
// @description			Wardrobe, outfit analysis and composition API built as a DDD modular monolith.
// @termsOfService			http://swagger.io/terms/
// @contact.name			API Support
// @contact.email			support@aikombin.app
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	photos, err := storage.NewPhotoStore(ctx, cfg)
	if err != nil {
		log.Warn("photo storage unavailable, uploads disabled", "error", err)
		photos = nil
	}

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled {
		temporalClient, err = workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer temporalClient.Close()
	}

	sessionStore := auth.NewSessionStore(
		redisClient.Client(),
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.Environment == config.EnvProduction,
	)
	log.Info("session store initialized", "backend", "redis")

	var mailSender mailer.Mailer
	if m := mailer.NewSendgridMailer(cfg); m != nil {
		mailSender = m
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		Records:        recordstore.NewPostgresStore(pool),
		Photos:         photos,
		Tokens:         auth.NewTokenIssuer([]byte(cfg.JWTSecret)),
		Mailer:         mailSender,
		TemporalClient: temporalClient,
		SessionStore:   sessionStore,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: pool,
		Redis:    redisClient,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerAPIRoutes(r, appConfig)
	})
	r.Route("/v1", func(r chi.Router) {
		registerV1Routes(r, appConfig)
	})

	srv := httpx.NewServer(":8080", r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerAPIRoutes mounts the session-authenticated app surface under /api.
// Sign-up and sign-in register their own public routes; everything else runs
// behind the session middleware.
func registerAPIRoutes(r chi.Router, a *app.Application) {
	identityApi.IdentityRoutes(r, a)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		closetApi.ClosetRoutes(r, a)
		outfitApi.OutfitRoutes(r, a)
	})
}

// registerV1Routes mounts the bearer-token surface under /v1.
func registerV1Routes(r chi.Router, a *app.Application) {
	closetApi.V1Routes(r, a)
	outfitApi.V1Routes(r, a)
}
