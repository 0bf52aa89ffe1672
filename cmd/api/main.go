package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/washdesk/washdesk-backend/api/routes"
	"github.com/washdesk/washdesk-backend/internal/parties"
	"github.com/washdesk/washdesk-backend/internal/pricing"
	"github.com/washdesk/washdesk-backend/internal/records"
	"github.com/washdesk/washdesk-backend/internal/taxonomy"
	"github.com/washdesk/washdesk-backend/pkg/config"
	"github.com/washdesk/washdesk-backend/pkg/db"
	"github.com/washdesk/washdesk-backend/pkg/logger"
	"github.com/washdesk/washdesk-backend/pkg/metrics"
	"github.com/washdesk/washdesk-backend/pkg/migrate"
	pkgredis "github.com/washdesk/washdesk-backend/pkg/redis"
	"github.com/washdesk/washdesk-backend/pkg/security"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var idempotencyStore pkgredis.IdempotencyStore
	if cfg.Redis.Enabled() {
		redisClient, err := pkgredis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		idempotencyStore = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, record idempotency keys disabled")
	}

	pinVerifier, err := security.NewPinVerifier(cfg.Admin.MasterPin)
	if err != nil {
		logg.Error(context.Background(), "failed to create pin verifier", err)
		os.Exit(1)
	}

	taxonomyRepo := taxonomy.NewRepository(dbClient.DB())
	pricingRepo := pricing.NewRepository(dbClient.DB())
	partiesRepo := parties.NewRepository(dbClient.DB())
	recordsRepo := records.NewRepository(dbClient.DB())
	resolver := parties.NewResolver(partiesRepo)

	taxonomyService, err := taxonomy.NewService(taxonomyRepo, pinVerifier)
	if err != nil {
		logg.Error(context.Background(), "failed to create taxonomy service", err)
		os.Exit(1)
	}
	pricingService, err := pricing.NewService(pricingRepo, dbClient, taxonomyRepo, pinVerifier)
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing service", err)
		os.Exit(1)
	}
	partiesService, err := parties.NewService(partiesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create parties service", err)
		os.Exit(1)
	}
	recordsService, err := records.NewService(recordsRepo, dbClient, resolver, pricingService, pinVerifier)
	if err != nil {
		logg.Error(context.Background(), "failed to create records service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			idempotencyStore,
			registry,
			httpMetrics,
			recordsService,
			pricingService,
			taxonomyService,
			partiesService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
