package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"

	"github.com/aikombin/aikombin-server/pkg/app"
	"github.com/aikombin/aikombin-server/pkg/cache"
	"github.com/aikombin/aikombin-server/pkg/config"
	"github.com/aikombin/aikombin-server/pkg/database"
	"github.com/aikombin/aikombin-server/pkg/events"
	"github.com/aikombin/aikombin-server/pkg/logger"
	"github.com/aikombin/aikombin-server/pkg/telemetry"
	"github.com/aikombin/aikombin-server/pkg/workflows"
	outfitworkflows "github.com/aikombin/aikombin-server/services/outfit/application/workflows"
	outfitEvents "github.com/aikombin/aikombin-server/services/outfit/domain/events"
	outfitmodels "github.com/aikombin/aikombin-server/services/outfit/domain/models"
	"github.com/aikombin/aikombin-server/services/outfit/infrastructure/analysis"
)

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

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if cfg.TemporalEnabled {
		stop, err := startAnalysisWorker(ctx, cfg, log)
		if err != nil {
			log.Error("failed to start analysis worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer stop()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, outfitEvents.TopicOutfitSaved, handleOutfitSaved(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", outfitEvents.TopicOutfitSaved,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{outfitEvents.TopicOutfitSaved})
	return nil
}

// handleOutfitSaved returns a handler for outfit.saved events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the latest-outfit Redis read model for the owning user.
func handleOutfitSaved(a *app.Application) func(context.Context, *message.Message) error {
	outfitCache := cache.NewOutfitCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt outfitEvents.OutfitSavedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := outfitCache.Set(ctx, &cache.CachedOutfit{
			OutfitID: evt.OutfitID,
			UserID:   evt.UserID,
			Name:     evt.Name,
			Score:    evt.Score,
			SavedAt:  evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for outfit.saved",
				"outfit_id", evt.OutfitID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"outfit_id", evt.OutfitID, "user_id", evt.UserID)
		}

		return nil
	}
}

// startAnalysisWorker hosts the outfit-analysis workflow on the Temporal task
// queue. The worker always runs the configured analyzer backend directly.
func startAnalysisWorker(ctx context.Context, cfg *config.Config, log logger.Logger) (func(), error) {
	tc, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		return nil, err
	}

	activities := &outfitworkflows.Activities{Analyzer: analyzerFromConfig(cfg)}

	w := worker.New(tc.Client, workflows.AnalysisTaskQueue, worker.Options{})
	w.RegisterWorkflow(outfitworkflows.AnalyzeOutfitWorkflow)
	w.RegisterActivity(activities.AnalyzeOutfit)

	if err := w.Start(); err != nil {
		tc.Close()
		return nil, err
	}
	log.Info("analysis worker started", "task_queue", workflows.AnalysisTaskQueue)

	return func() {
		w.Stop()
		tc.Close()
	}, nil
}

// analyzerFromConfig mirrors the API process's analyzer selection so workflow
// activities score outfits with the same backend.
func analyzerFromConfig(cfg *config.Config) outfitmodels.Analyzer {
	switch cfg.Analyzer {
	case config.AnalyzerRemote:
		return analysis.NewRemoteClient(cfg.AnalyzerURL, cfg.AnalyzerToken)
	case config.AnalyzerGemini:
		return analysis.NewGeminiAnalyzer(cfg.GeminiAPIKey)
	default:
		return analysis.NewStubAnalyzer()
	}
}
