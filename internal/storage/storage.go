// Package storage persists the booking collection as a single serialized
// value, overwritten wholesale on every mutation. There is no schema
// versioning and no migration path: an absent or malformed snapshot is
// treated as an empty collection.
package storage

import (
	"context"
	"encoding/json"

	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

// Snapshotter is the persistence port injected into the booking store.
type Snapshotter interface {
	Load(ctx context.Context) ([]model.Booking, error)
	Save(ctx context.Context, bookings []model.Booking) error
}

func encodeSnapshot(bookings []model.Booking) ([]byte, error) {
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return json.Marshal(bookings)
}

// decodeSnapshot never fails: a snapshot that does not parse is logged
// and read as empty.
func decodeSnapshot(data []byte, log *logger.Logger) []model.Booking {
	if len(data) == 0 {
		return []model.Booking{}
	}

	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		if log != nil {
			log.Warn("Malformed booking snapshot, starting empty", "error", err)
		}
		return []model.Booking{}
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings
}
