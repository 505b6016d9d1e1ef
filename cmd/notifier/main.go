package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"venuehub/internal/notifier"
	"venuehub/pkg/config"
	"venuehub/pkg/kafka"
)

const ServiceName = "notifier"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Fatal("The notifier requires Kafka brokers to be configured")
	}

	worker := notifier.New(cfg.Log)
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaConsumerGroup, worker.Handle)
	if err != nil {
		cfg.Log.Fatal("Failed to build the Kafka consumer", "error", err)
	}
	defer consumer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg.Log.Info("Notifier started", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic, "group", cfg.KafkaConsumerGroup)
	if err := consumer.Run(ctx); err != nil {
		cfg.Log.Fatal("Consumer stopped with an error", "error", err)
	}
	cfg.Log.Info("Notifier stopped")
}
