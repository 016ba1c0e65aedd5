package weather

import "context"

// Sensor abstracts a simulated station sensor (temperature, wind, rain, ...).
// Implementations own their state and must be safe for concurrent use.
type Sensor interface {
	Name() string
	// Produce returns the primary value formatted as text.
	Produce() string
	Readings() []Reading
	Advance()
}

// SnapshotWriter is the contract the snapshot file (or any future sink) must satisfy.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, snapshot Snapshot) error
}
