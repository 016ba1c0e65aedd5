// Package snapshot reads and writes the snapshot stream shared by the
// publisher and the receiver.
//
// A stream is a sequence of JSON values, one per line. A record is a JSON
// string of the form "<Name>: <Value>"; any other value is an unknown record
// type. The stream ends at end of file.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/i474232898/weather-station/internal/weather"
)

// Delimiter separates the reading name from its value inside a record.
const Delimiter = ": "

var (
	// ErrMalformedRecord is returned for a record without Delimiter.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnknownRecord is returned for a stream element that is not a string record.
	ErrUnknownRecord = errors.New("unknown record type")
)

// RecordError reports a problem with a single record of the stream.
type RecordError struct {
	Index int
	Raw   string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v: %s", e.Index, e.Err, e.Raw)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// FormatRecord renders a reading as "<Name>: <Value>".
func FormatRecord(r weather.Reading) string {
	return r.Name + Delimiter + r.Value
}

// ParseRecord splits a record on the first occurrence of Delimiter.
func ParseRecord(s string) (weather.Reading, error) {
	name, value, ok := strings.Cut(s, Delimiter)
	if !ok {
		return weather.Reading{}, ErrMalformedRecord
	}
	return weather.Reading{Name: name, Value: value}, nil
}

// Encode writes every reading of the snapshot as one record.
func Encode(w io.Writer, snapshot weather.Snapshot) error {
	enc := json.NewEncoder(w)
	for _, r := range snapshot {
		if err := enc.Encode(FormatRecord(r)); err != nil {
			return fmt.Errorf("encode %q: %w", r.Name, err)
		}
	}
	return nil
}

// Decoder reads records from a snapshot stream.
type Decoder struct {
	dec   *json.Decoder
	index int
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: json.NewDecoder(r)}
}

// Next returns the next record. It returns io.EOF at the end of the stream
// and a *RecordError wrapping ErrUnknownRecord or ErrMalformedRecord for a
// bad record; decoding may continue after either. Any other error means the
// stream itself is unreadable.
func (d *Decoder) Next() (weather.Reading, error) {
	var raw json.RawMessage
	if err := d.dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return weather.Reading{}, io.EOF
		}
		return weather.Reading{}, fmt.Errorf("read record %d: %w", d.index, err)
	}

	index := d.index
	d.index++

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return weather.Reading{}, &RecordError{Index: index, Raw: string(raw), Err: ErrUnknownRecord}
	}

	r, err := ParseRecord(s)
	if err != nil {
		return weather.Reading{}, &RecordError{Index: index, Raw: s, Err: err}
	}
	return r, nil
}
