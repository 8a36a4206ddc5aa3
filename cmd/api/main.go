package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/scanregistry/docs/swagger"
	migrations "github.com/ghuser/scanregistry/migrations/registry"
	"github.com/ghuser/scanregistry/pkg/app"
	"github.com/ghuser/scanregistry/pkg/config"
	"github.com/ghuser/scanregistry/pkg/database"
	"github.com/ghuser/scanregistry/pkg/events"
	"github.com/ghuser/scanregistry/pkg/httpx"
	"github.com/ghuser/scanregistry/pkg/logger"
	"github.com/ghuser/scanregistry/pkg/migrator"
	"github.com/ghuser/scanregistry/pkg/telemetry"
	registryApi "github.com/ghuser/scanregistry/services/registry/application/api"
	registryEvents "github.com/ghuser/scanregistry/services/registry/domain/events"
)

// @title					ScanRegistry API
// @version				1.0
// @description			Local-first QR scan registration service with CSV export.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http
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

	db, err := database.Open(ctx, cfg.DatabasePath, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer db.Close()

	if err := migrator.RunMigrations(db.DB(), migrations.MigrationsFS); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("record store ready", "path", cfg.DatabasePath)

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	if err := startAuditTrail(ctx, eventBus, log); err != nil {
		log.Error("failed to start audit trail", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Db:       db,
		Logger:   log,
		EventBus: eventBus,
		Config:   cfg,
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
		Database: db,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.ListenAddr, r)

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

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	registryApi.RegistryRoutes(r, a)
}

// startAuditTrail subscribes to the record lifecycle topics and logs every
// event, giving each device a local activity trail of who registered,
// renamed, or removed what.
func startAuditTrail(ctx context.Context, bus *events.EventBus, log logger.Logger) error {
	topics := []string{
		registryEvents.TopicScanRegistered,
		registryEvents.TopicScanRenamed,
		registryEvents.TopicScanRemoved,
	}
	for _, topic := range topics {
		topic := topic
		errCh, err := bus.Subscribe(ctx, topic, func(msgCtx context.Context, msg *message.Message) error {
			var payload map[string]any
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				return err
			}
			log.InfoContext(msgCtx, "audit",
				"topic", topic,
				"event_id", msg.Metadata.Get("event_id"),
				"code", payload["code"],
			)
			return nil
		})
		if err != nil {
			return err
		}
		go func() {
			for err := range errCh {
				log.Error("audit subscriber error", "topic", topic, "error", err)
			}
		}()
	}
	return nil
}
