package storage

import (
	"context"
	"sync"

	"venuehub/pkg/model"
)

// MemorySnapshotter keeps the snapshot in process memory. Used by tests
// and by deployments that accept losing state on restart.
type MemorySnapshotter struct {
	mu   sync.Mutex
	data []byte
}

func NewMemorySnapshotter() *MemorySnapshotter {
	return &MemorySnapshotter{}
}

func (m *MemorySnapshotter) Load(_ context.Context) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decodeSnapshot(m.data, nil), nil
}

func (m *MemorySnapshotter) Save(_ context.Context, bookings []model.Booking) error {
	data, err := encodeSnapshot(bookings)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}
