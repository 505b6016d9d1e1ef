package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingserrors "venuehub/internal/bookings/errors"
	"venuehub/internal/storage"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Service: "test"})
}

func pendingBooking(id, venueID, date, slotID string) model.Booking {
	return model.Booking{
		ID:            id,
		VenueID:       venueID,
		Date:          date,
		TimeSlotID:    slotID,
		RequesterName: "Dana Levi",
		RequestedBy:   "dana",
		Department:    "Computer Science",
		Purpose:       "Board Meeting",
		Attendees:     12,
		ContactEmail:  "dana@uni.edu",
		Status:        model.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), storage.NewMemorySnapshotter(), testLogger())
	require.NoError(t, err)
	return store
}

func TestConflicts(t *testing.T) {
	key := model.SlotKey{VenueID: "main-auditorium", Date: "2024-03-10", TimeSlotID: "slot-09"}

	b1 := pendingBooking("b1", "main-auditorium", "2024-03-10", "slot-09")
	b2 := pendingBooking("b2", "lecture-hall-a", "2024-03-10", "slot-09")
	cancelled := pendingBooking("b3", "main-auditorium", "2024-03-10", "slot-09")
	cancelled.Status = model.StatusCancelled
	rejected := pendingBooking("b4", "main-auditorium", "2024-03-10", "slot-09")
	rejected.Status = model.StatusRejected
	approved := pendingBooking("b5", "main-auditorium", "2024-03-10", "slot-09")
	approved.Status = model.StatusApproved

	tests := []struct {
		name     string
		bookings []model.Booking
		want     bool
	}{
		{name: "empty store", bookings: nil, want: false},
		{name: "pending match", bookings: []model.Booking{b1}, want: true},
		{name: "approved match", bookings: []model.Booking{approved}, want: true},
		{name: "other venue only", bookings: []model.Booking{b2}, want: false},
		{name: "cancelled does not occupy", bookings: []model.Booking{cancelled}, want: false},
		{name: "rejected does not occupy", bookings: []model.Booking{rejected}, want: false},
		{name: "match among noise", bookings: []model.Booking{b2, cancelled, b1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Conflicts(tt.bookings, key); got != tt.want {
				t.Errorf("Conflicts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConflicts_OrderIndependent(t *testing.T) {
	key := model.SlotKey{VenueID: "main-auditorium", Date: "2024-03-10", TimeSlotID: "slot-09"}

	match := pendingBooking("b1", "main-auditorium", "2024-03-10", "slot-09")
	noiseA := pendingBooking("b2", "lecture-hall-a", "2024-03-10", "slot-09")
	noiseB := pendingBooking("b3", "main-auditorium", "2024-03-11", "slot-09")

	forward := []model.Booking{match, noiseA, noiseB}
	backward := []model.Booking{noiseB, noiseA, match}

	assert.Equal(t, Conflicts(forward, key), Conflicts(backward, key))
	assert.True(t, Conflicts(forward, key))
}

func TestStore_InsertEnforcesUniqueness(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, pendingBooking("b1", "main-auditorium", "2024-03-10", "slot-09")))

	err := store.Insert(ctx, pendingBooking("b2", "main-auditorium", "2024-03-10", "slot-09"))
	assert.ErrorIs(t, err, bookingserrors.ErrSlotTaken)
	assert.Equal(t, 1, store.Len())

	// A different slot on the same day is fine.
	require.NoError(t, store.Insert(ctx, pendingBooking("b3", "main-auditorium", "2024-03-10", "slot-10")))
	assert.Equal(t, 2, store.Len())
}

func TestStore_CancelledSlotCanBeRebooked(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, pendingBooking("b1", "main-auditorium", "2024-03-10", "slot-09")))

	_, err := store.Update(ctx, "b1", func(b *model.Booking) error {
		b.Status = model.StatusCancelled
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, store.Insert(ctx, pendingBooking("b2", "main-auditorium", "2024-03-10", "slot-09")))
	assert.Equal(t, 2, store.Len())
}

func TestStore_UpdateErrorLeavesRecordUntouched(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	original := pendingBooking("b1", "main-auditorium", "2024-03-10", "slot-09")
	require.NoError(t, store.Insert(ctx, original))

	_, err := store.Update(ctx, "b1", func(b *model.Booking) error {
		b.Status = model.StatusApproved
		return bookingserrors.ErrTerminalStatus
	})
	assert.ErrorIs(t, err, bookingserrors.ErrTerminalStatus)

	got, ok := store.Get("b1")
	require.True(t, ok)
	assert.Equal(t, model.StatusPending, got.Status)
}

func TestStore_DeleteGuard(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, pendingBooking("b1", "main-auditorium", "2024-03-10", "slot-09")))

	err := store.Delete(ctx, "b1", func(model.Booking) error {
		return bookingserrors.ErrTerminalStatus
	})
	assert.ErrorIs(t, err, bookingserrors.ErrTerminalStatus)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "b1", nil))
	assert.Equal(t, 0, store.Len())

	assert.ErrorIs(t, store.Delete(ctx, "b1", nil), bookingserrors.ErrNotFound)
}

func TestStore_MirrorsSnapshotOnEveryMutation(t *testing.T) {
	snap := storage.NewMemorySnapshotter()
	ctx := context.Background()

	store, err := NewStore(ctx, snap, testLogger())
	require.NoError(t, err)

	require.NoError(t, store.Insert(ctx, pendingBooking("b1", "main-auditorium", "2024-03-10", "slot-09")))

	persisted, err := snap.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)

	// A fresh store over the same snapshot sees the booking.
	reloaded, err := NewStore(ctx, snap, testLogger())
	require.NoError(t, err)
	got, ok := reloaded.Get("b1")
	require.True(t, ok)
	assert.Equal(t, "Board Meeting", got.Purpose)
}
