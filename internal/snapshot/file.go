package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"

	"github.com/i474232898/weather-station/internal/weather"
)

// DefaultPath is where the snapshot lives when no path is configured.
const DefaultPath = "data.ser"

// File is a snapshot stored on disk. Writes replace the file atomically, so
// a reader sees either the previous snapshot or the new one, never a mix.
type File struct {
	path string
	perm os.FileMode
}

// NewFile returns a File for path.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{path: path, perm: 0o644}
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// WriteSnapshot encodes the snapshot and atomically replaces the file.
func (f *File) WriteSnapshot(ctx context.Context, snapshot weather.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, snapshot); err != nil {
		return err
	}
	if err := renameio.WriteFile(f.path, buf.Bytes(), f.perm); err != nil {
		return fmt.Errorf("write snapshot %s: %w", f.path, err)
	}
	return nil
}

// Open opens the snapshot for reading.
func (f *File) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}
