package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightsearch-service/internal/api"
	"flightsearch-service/internal/cache"
	domainRepo "flightsearch-service/internal/domain/repository"
	"flightsearch-service/internal/events"
	"flightsearch-service/internal/infrastructure/config"
	"flightsearch-service/internal/infrastructure/persistence"
	gormRepo "flightsearch-service/internal/interface/repository"
	"flightsearch-service/internal/usecase"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flight Search Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL
	log.Info("Connecting to PostgreSQL")
	db, err := persistence.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	repos := gormRepo.NewRepositories(db)
	uow := gormRepo.NewGormUnitOfWork(db)

	// Snapshot archive is optional
	var snapshots domainRepo.SnapshotRepository
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		defer mongoClient.Disconnect(ctx)
		snapshots = gormRepo.NewMongoSnapshotRepository(mongoClient.Database(cfg.MongoDB))
	}

	// Price cache is optional
	var priceCache usecase.PriceCache
	if cfg.RedisAddr != "" {
		priceCache = cache.NewRedisPriceCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.PriceCacheTTL)
	}

	// Event producer is optional
	var publisher usecase.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
	}

	m := metrics.NewMetrics("flightsearch")

	livePricing := gormRepo.NewLivePricingClient(
		&http.Client{Timeout: cfg.FlightAPITimeout},
		cfg.FlightAPIBaseURL,
		cfg.FlightAPIKey,
		cfg.Market,
		cfg.Currency,
		cfg.Locale,
		log,
	)

	materializer := usecase.NewMaterializer(log)
	searchUsecase := usecase.NewSearchUsecase(
		livePricing,
		uow,
		repos.FlightSearches,
		repos.Legs,
		repos.Places,
		snapshots,
		materializer,
		priceCache,
		publisher,
		m,
		log,
	)

	searchHandler := api.NewSearchHandler(searchUsecase)
	adminHandler := api.NewAdminHandler(repos.Places, repos.Carriers, repos.Agents, repos.Legs, repos.FlightSearches)
	router := api.NewRouter(searchHandler, adminHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
}
