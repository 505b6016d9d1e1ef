package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

// FileSnapshotter mirrors the collection to one local JSON file, the
// on-disk analog of a browser local-storage key.
type FileSnapshotter struct {
	path string
	log  *logger.Logger
}

func NewFileSnapshotter(path string, log *logger.Logger) *FileSnapshotter {
	return &FileSnapshotter{path: path, log: log}
}

func (f *FileSnapshotter) Load(_ context.Context) ([]model.Booking, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Booking{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	return decodeSnapshot(data, f.log), nil
}

func (f *FileSnapshotter) Save(_ context.Context, bookings []model.Booking) error {
	data, err := encodeSnapshot(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	// Write-and-rename so a crash mid-write cannot leave a truncated
	// snapshot behind.
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".venuehub-snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
