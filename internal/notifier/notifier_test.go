package notifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuehub/pkg/kafka"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

func testMessage(t *testing.T, eventType string) kafka.Message {
	t.Helper()

	booking := model.Booking{
		ID:          "b-1",
		VenueID:     "main-auditorium",
		Date:        "2030-01-15",
		TimeSlotID:  "slot-09",
		RequestedBy: "dana",
		Status:      model.StatusPending,
	}
	msg, err := kafka.NewEventMessage(eventType, "venuehub", booking.ID, booking)
	require.NoError(t, err)
	return msg
}

func TestHandle_KnownEvents(t *testing.T) {
	n := New(logger.New(logger.Config{Level: logger.LevelError, Service: "test"}))

	for _, eventType := range []string{
		"booking.created",
		"booking.approved",
		"booking.rejected",
		"booking.cancelled",
		"booking.deleted",
	} {
		t.Run(eventType, func(t *testing.T) {
			assert.NoError(t, n.Handle(context.Background(), testMessage(t, eventType)))
		})
	}
}

func TestHandle_UnknownEventCommits(t *testing.T) {
	n := New(logger.New(logger.Config{Level: logger.LevelError, Service: "test"}))
	assert.NoError(t, n.Handle(context.Background(), testMessage(t, "booking.exploded")))
}

func TestHandle_MalformedPayloadCommits(t *testing.T) {
	n := New(logger.New(logger.Config{Level: logger.LevelError, Service: "test"}))

	msg := kafka.Message{
		Key:     "b-1",
		Value:   []byte("{not json"),
		Headers: map[string]string{kafka.HeaderEventType: "booking.created"},
	}
	assert.NoError(t, n.Handle(context.Background(), msg))
}

func TestNotificationText(t *testing.T) {
	b := model.Booking{VenueID: "main-auditorium", Date: "2030-01-15", TimeSlotID: "slot-09"}

	text, ok := notificationText("booking.approved", b)
	require.True(t, ok)
	assert.Contains(t, text, "approved")
	assert.Contains(t, text, "main-auditorium")

	_, ok = notificationText("booking.exploded", b)
	assert.False(t, ok)
}
