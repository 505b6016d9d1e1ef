package service

import (
	"context"

	"venuehub/pkg/kafka"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingApproved  = "booking.approved"
	EventBookingRejected  = "booking.rejected"
	EventBookingCancelled = "booking.cancelled"
	EventBookingDeleted   = "booking.deleted"

	eventSource = "venuehub"
)

// EventPublisher announces lifecycle changes. Publishing is best effort:
// implementations log failures and never propagate them, so a broker
// outage cannot fail a booking action.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, booking model.Booking)
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) EventPublisher {
	return &kafkaPublisher{producer: producer, log: log}
}

func (p *kafkaPublisher) Publish(ctx context.Context, eventType string, booking model.Booking) {
	msg, err := kafka.NewEventMessage(eventType, eventSource, booking.ID, booking)
	if err != nil {
		p.log.Error("Failed to build booking event", "event_type", eventType, "booking_id", booking.ID, "error", err)
		return
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish booking event", "event_type", eventType, "booking_id", booking.ID, "error", err)
		return
	}

	p.log.Debug("Booking event published", "event_type", eventType, "booking_id", booking.ID)
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, model.Booking) {}
