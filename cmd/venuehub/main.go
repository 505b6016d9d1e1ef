package main

import (
	"context"

	"github.com/joho/godotenv"

	"venuehub/internal/bookings/handler"
	"venuehub/internal/bookings/repository"
	"venuehub/internal/bookings/service"
	"venuehub/internal/bookings/validator"
	"venuehub/internal/catalog"
	"venuehub/internal/session"
	"venuehub/internal/storage"
	"venuehub/internal/wizard"
	"venuehub/pkg/app"
	"venuehub/pkg/config"
	"venuehub/pkg/kafka"
)

const ServiceName = "venuehub"

func main() {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting VenueHub service")

	ctx := context.Background()

	snap := newSnapshotter(ctx, cfg)
	store, err := repository.NewStore(ctx, snap, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to load the booking snapshot", "error", err)
	}
	cfg.Log.Info("Booking store initialized", "backend", cfg.StorageBackend, "bookings", store.Len())

	cat := catalog.New()
	publisher := newPublisher(cfg)
	bookingService := service.NewBookingService(store, cat, validator.NewBookingValidator(cfg.Log), publisher, cfg.Log)

	sessions := session.NewStore()
	wizardManager := wizard.NewManager(bookingService, cat, cfg.Log)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		sessions,
		handler.NewHealthHandler(snap, cfg.Log),
		catalog.NewHandler(cat, cfg.Log),
		handler.NewBookingHandler(bookingService, cfg.Log),
		wizard.NewHandler(wizardManager, cfg.Log),
		session.NewHandler(sessions, cfg.Log),
	)
	serverApp.Run()
}

func newSnapshotter(ctx context.Context, cfg *config.Config) storage.Snapshotter {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		snap, err := storage.NewRedisSnapshotter(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SnapshotKey, cfg.Log)
		if err != nil {
			cfg.Log.Fatal("Failed to connect to Redis", "error", err)
		}
		return snap

	case config.BackendMongo:
		snap, err := storage.NewMongoSnapshotter(ctx, cfg.MongoURI, cfg.MongoDatabaseName, cfg.MongoConnTimeout, cfg.SnapshotKey, cfg.Log)
		if err != nil {
			cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		return snap

	case config.BackendMemory:
		cfg.Log.Warn("Using the in-memory backend; bookings will not survive a restart")
		return storage.NewMemorySnapshotter()

	default:
		return storage.NewFileSnapshotter(cfg.SnapshotPath, cfg.Log)
	}
}

func newPublisher(cfg *config.Config) service.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("No Kafka brokers configured; booking events disabled")
		return service.NoopPublisher{}
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to build the Kafka producer", "error", err)
	}

	cfg.Log.Info("Booking events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return service.NewKafkaPublisher(producer, cfg.Log)
}
