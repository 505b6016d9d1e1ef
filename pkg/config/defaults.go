package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultStorageBackend = BackendFile
	DefaultSnapshotPath   = "venuehub_bookings.json"
	DefaultSnapshotKey    = "venuehub:bookings"

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisDB   = 0

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "venuehub"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultKafkaBrokers       = ""
	DefaultKafkaTopic         = "venuehub.booking-events"
	DefaultKafkaConsumerGroup = "venuehub-notifier"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
