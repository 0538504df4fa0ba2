package app

import (
	"github.com/gorilla/sessions"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/cache"
	"github.com/aikombin/aikombin-server/pkg/config"
	"github.com/aikombin/aikombin-server/pkg/database"
	"github.com/aikombin/aikombin-server/pkg/events"
	"github.com/aikombin/aikombin-server/pkg/logger"
	"github.com/aikombin/aikombin-server/pkg/mailer"
	"github.com/aikombin/aikombin-server/pkg/recordstore"
	"github.com/aikombin/aikombin-server/pkg/storage"
	"github.com/aikombin/aikombin-server/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registrations during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "saving outfit", "outfit_id", id)
//	app.Logger.ErrorContext(ctx, "analysis failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	Records        recordstore.Store
	Photos         *storage.PhotoStore       // nil when photo storage is not configured
	Tokens         *auth.TokenIssuer
	Mailer         mailer.Mailer             // nil when outbound mail is disabled
	TemporalClient *workflows.TemporalClient // nil unless TEMPORAL_ENABLED
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
}
