package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/skyward/api"
	"github.com/Domenick1991/skyward/config"
	"github.com/Domenick1991/skyward/internal/bootstrap"
	"github.com/Domenick1991/skyward/internal/cache"
	"github.com/Domenick1991/skyward/internal/journey"
	"github.com/Domenick1991/skyward/internal/kafka"
	"github.com/Domenick1991/skyward/internal/notify"
	"github.com/Domenick1991/skyward/internal/repository"
	"github.com/Domenick1991/skyward/internal/service/auth"
	"github.com/Domenick1991/skyward/internal/service/catalog"
	"github.com/Domenick1991/skyward/internal/service/ledger"
	"github.com/Domenick1991/skyward/internal/service/workflow"
	"github.com/Domenick1991/skyward/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		userRepo    repository.UserRepository
		bookingRepo repository.BookingRepository
		flightRepo  repository.FlightRepository
	)

	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		userRepo = repository.NewPGUserRepository(pool)
		bookingRepo = repository.NewPGBookingRepository(pool)
		flightRepo = repository.NewPGFlightRepository(pool)
	case "redis":
		redisStore := store.NewRedisStore(cfg.Redis)
		defer redisStore.Close()
		userRepo = repository.NewUserRepository(redisStore)
		bookingRepo = repository.NewBookingRepository(redisStore)
		flightRepo = repository.NewStaticFlightRepository(catalog.SampleFlights())
	case "file":
		fileStore, err := store.NewFileStore(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("open store file: %v", err)
		}
		userRepo = repository.NewUserRepository(fileStore)
		bookingRepo = repository.NewBookingRepository(fileStore)
		flightRepo = repository.NewStaticFlightRepository(catalog.SampleFlights())
	default:
		memStore := store.NewMemoryStore()
		userRepo = repository.NewUserRepository(memStore)
		bookingRepo = repository.NewBookingRepository(memStore)
		flightRepo = repository.NewStaticFlightRepository(catalog.SampleFlights())
	}

	var flightCache catalog.Cache
	if cfg.Redis.Addr != "" {
		flightCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	}

	var notifier workflow.Notifier = notify.NewLogNotifier()
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.NotificationsTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		notifier = notify.NewKafkaNotifier(producer, cfg.Kafka.NotificationsTopic)
	}

	authService := auth.NewAuthService(userRepo)
	catalogService := catalog.NewCatalogService(flightRepo, flightCache)
	ledgerService := ledger.NewLedgerService(bookingRepo)
	workflowService := workflow.NewService(
		flightRepo,
		ledgerService,
		notifier,
		workflow.WithSimulatedLatency(time.Duration(cfg.Booking.SimulatedLatencyMS)*time.Millisecond),
	)

	journeyClient := journey.NewClient(journey.WithBaseURL(cfg.Journey.BaseURL))

	handlers := bootstrap.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Flights:  api.NewFlightHandler(catalogService),
		Bookings: api.NewBookingHandler(authService, ledgerService, workflowService),
		Journeys: api.NewJourneyHandler(journeyClient),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
