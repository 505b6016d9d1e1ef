// Package notifier turns booking lifecycle events into notification log
// lines. It stands in for the email and push channels the campus portal
// eventually delivers to.
package notifier

import (
	"context"
	"fmt"

	"venuehub/pkg/kafka"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

type Notifier struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Notifier {
	return &Notifier{log: log}
}

// Handle processes one booking event. Unknown event types are logged and
// committed so a newer producer cannot wedge an older notifier.
func (n *Notifier) Handle(_ context.Context, msg kafka.Message) error {
	var booking model.Booking
	if err := msg.DecodeValue(&booking); err != nil {
		n.log.Error("Failed to decode booking event", "event_type", msg.EventType(), "key", msg.Key, "error", err)
		// Malformed payloads are never going to parse; commit and move on.
		return nil
	}

	text, ok := notificationText(msg.EventType(), booking)
	if !ok {
		n.log.Warn("Skipping unknown booking event", "event_type", msg.EventType(), "booking_id", booking.ID)
		return nil
	}

	n.log.Info("Notification",
		"recipient", booking.RequestedBy,
		"booking_id", booking.ID,
		"venue_id", booking.VenueID,
		"date", booking.Date,
		"time_slot_id", booking.TimeSlotID,
		"message", text,
	)
	return nil
}

func notificationText(eventType string, b model.Booking) (string, bool) {
	where := fmt.Sprintf("%s on %s (%s)", b.VenueID, b.Date, b.TimeSlotID)

	switch eventType {
	case "booking.created":
		return fmt.Sprintf("Your reservation request for %s was received and is pending approval", where), true
	case "booking.approved":
		return fmt.Sprintf("Your reservation for %s was approved", where), true
	case "booking.rejected":
		return fmt.Sprintf("Your reservation request for %s was rejected", where), true
	case "booking.cancelled":
		return fmt.Sprintf("Your reservation for %s was cancelled", where), true
	case "booking.deleted":
		return fmt.Sprintf("Your reservation record for %s was removed", where), true
	}
	return "", false
}
