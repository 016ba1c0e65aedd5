// Package receiver loads the latest snapshot into the shared store.
package receiver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/i474232898/weather-station/internal/snapshot"
	"github.com/i474232898/weather-station/internal/store"
)

// Source opens the snapshot stream for one pass.
type Source interface {
	Open() (io.ReadCloser, error)
}

// Receiver performs deserialize-store-notify passes.
type Receiver struct {
	source Source
	store  *store.MemoryStore
	logger *slog.Logger
}

func New(source Source, st *store.MemoryStore, logger *slog.Logger) *Receiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Receiver{
		source: source,
		store:  st,
		logger: logger.With("component", "receiver"),
	}
}

// Pass reads the whole snapshot and, on success, replaces the store contents
// with it, which notifies the store observers once.
//
// Unknown record types are logged and skipped. A malformed record or a read
// failure aborts the pass and leaves the store as it was.
func (r *Receiver) Pass(ctx context.Context) error {
	passID := uuid.NewString()
	logger := r.logger.With("pass_id", passID)

	rc, err := r.source.Open()
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer rc.Close()

	var batch []store.Entry
	dec := snapshot.NewDecoder(rc)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, snapshot.ErrUnknownRecord) {
			logger.Warn("skipping record", "error", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("pass %s: %w", passID, err)
		}
		batch = append(batch, store.Entry{Key: rec.Name, Value: rec.Value})
	}

	r.store.Replace(batch)
	logger.Debug("pass complete", "records", len(batch))
	return nil
}
