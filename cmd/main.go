package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DaBenjle/aonapi/internal/aon"
	"github.com/DaBenjle/aonapi/internal/config"
	"github.com/DaBenjle/aonapi/internal/db"
	"github.com/DaBenjle/aonapi/internal/handlers"
	"github.com/DaBenjle/aonapi/internal/jobs"
	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/observability"
	"github.com/DaBenjle/aonapi/internal/repos"
	"github.com/DaBenjle/aonapi/internal/serializers"
	"github.com/DaBenjle/aonapi/internal/server"
	"github.com/DaBenjle/aonapi/internal/services"
)

const serviceName = "aonapi"

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tracing (no-op unless OTEL_ENABLED)
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: serviceName,
		Environment: logMode,
	})

	// Config
	log.Info("Loading configuration from main...")
	cfg := config.Load(log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	categoryRepo := repos.NewCategoryRepo(thePG, log)
	uuidGroupRepo := repos.NewUUIDGroupRepo(thePG, log)
	ancestryRepo := repos.NewAncestryRepo(thePG, log)
	classRepo := repos.NewClassRepo(thePG, log)
	itemRepo := repos.NewItemRepo(thePG, log)

	// Upstream client
	aonClient := aon.NewClient(log, cfg.IndexURL, cfg.SearchURL, cfg.UpstreamTimeout)

	// Services
	log.Info("Setting up Services from main...")
	categoryService := services.NewCategoryService(thePG, log, categoryRepo, cfg.CategoryCacheTTL)
	indexCache := services.NewUUIDIndexCache(log, aonClient, cfg.IndexCacheTTL)
	defer indexCache.Close()
	registrarService := services.NewRegistrarService(thePG, log, categoryService, uuidGroupRepo, cfg.RegistrarRetries, cfg.RegistrarRetryDelay)

	registry := serializers.NewRegistry()
	stores := map[string]repos.RecordStore{
		"ancestry": repos.NewAncestryStore(ancestryRepo),
		"class":    repos.NewClassStore(classRepo),
	}
	nethysService := services.NewNethysDataService(
		thePG,
		log,
		uuidGroupRepo,
		categoryService,
		registry,
		stores,
		repos.NewItemStore(itemRepo),
		aonClient,
		cfg.FreshnessWindow,
	)

	// Background sync: initial pass + one per interval
	scheduler := jobs.NewScheduler(log, indexCache, registrarService, cfg.SyncInterval)
	scheduler.Start(ctx)

	// Router
	nethysHandler := handlers.NewNethysHandler(log, categoryService, nethysService, uuidGroupRepo)
	router := server.NewRouter(server.RouterConfig{
		NethysHandler: nethysHandler,
		ServiceName:   serviceName,
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("Shutting down...")
		cancel()
		if otelShutdown != nil {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = otelShutdown(shutdownCtx)
		}
		indexCache.Close()
		os.Exit(0)
	}()

	log.Info("Starting HTTP server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("HTTP server failed", "error", err)
	}
}
