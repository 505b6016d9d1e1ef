package repository

import (
	"context"
	"fmt"
	"sync"

	bookingserrors "venuehub/internal/bookings/errors"
	"venuehub/internal/storage"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

// Store owns the in-memory booking collection and mirrors it wholesale
// through the injected Snapshotter after every successful mutation.
// Mutations are atomic under the store lock, so the conflict check and
// the insert cannot interleave.
type Store struct {
	mu       sync.RWMutex
	bookings []model.Booking
	snap     storage.Snapshotter
	log      *logger.Logger
}

// NewStore loads the persisted collection once. A malformed or absent
// snapshot starts the store empty; only an unreachable backend fails.
func NewStore(ctx context.Context, snap storage.Snapshotter, log *logger.Logger) (*Store, error) {
	bookings, err := snap.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking snapshot: %w", err)
	}

	log.Info("Booking store loaded", "bookings", len(bookings))
	return &Store{
		bookings: bookings,
		snap:     snap,
		log:      log,
	}, nil
}

// List returns a copy of the collection.
func (s *Store) List() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Store) Get(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return s.bookings[i], true
		}
	}
	return model.Booking{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

// Insert appends the booking unless its (venue, date, slot) triple is
// already held by an active booking. This is the sole consistency rule
// enforced before insertion.
func (s *Store) Insert(ctx context.Context, booking model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if Conflicts(s.bookings, booking.SlotKey()) {
		return bookingserrors.ErrSlotTaken
	}

	s.bookings = append(s.bookings, booking)
	s.persistLocked(ctx)
	return nil
}

// Update applies mutate to the booking under the store lock. A non-nil
// error from mutate leaves the collection untouched and unpersisted.
func (s *Store) Update(ctx context.Context, id string, mutate func(*model.Booking) error) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}

		updated := s.bookings[i]
		if err := mutate(&updated); err != nil {
			return s.bookings[i], err
		}

		s.bookings[i] = updated
		s.persistLocked(ctx)
		return updated, nil
	}

	return model.Booking{}, bookingserrors.ErrNotFound
}

// Delete removes the booking after the guard accepts it. A non-nil guard
// error leaves the record in place.
func (s *Store) Delete(ctx context.Context, id string, guard func(model.Booking) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}

		if guard != nil {
			if err := guard(s.bookings[i]); err != nil {
				return err
			}
		}

		s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
		s.persistLocked(ctx)
		return nil
	}

	return bookingserrors.ErrNotFound
}

// persistLocked mirrors the collection to the snapshot backend. The
// mirror is fire-and-forget: a failed write is logged but never fails
// the user action that triggered it.
func (s *Store) persistLocked(ctx context.Context) {
	snapshot := make([]model.Booking, len(s.bookings))
	copy(snapshot, s.bookings)

	if err := s.snap.Save(ctx, snapshot); err != nil {
		s.log.Error("Failed to persist booking snapshot", "error", err, "bookings", len(snapshot))
	}
}
