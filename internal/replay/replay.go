// Package replay reads and writes the per-tick input recordings a FastStack
// driver uses for deterministic playback (spec.md 6's trailing-argument
// replay filename). Records are newline-delimited JSON, one per tick, in
// the teacher's event_log.go style of "one flat JSON struct per line" but
// simplified from an async rate-limited circular buffer (not needed here:
// a replay file is written by a single local process, never under load
// from untrusted remote producers).
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"faststack/internal/engine"
)

// Record is one recorded tick: the input snapshot the host fed to
// Engine.Tick, plus the tick index for sanity-checking replay order.
type Record struct {
	Tick     int           `json:"tick"`
	Movement int           `json:"movement"`
	Rotation int           `json:"rotation"`
	Gravity  float64       `json:"gravity"`
	Extra    engine.Extra  `json:"extra"`
}

// ToInput converts a Record back into the engine.Input it was recorded
// from.
func (r Record) ToInput() engine.Input {
	return engine.Input{
		Movement: r.Movement,
		Rotation: engine.RotationAmount(r.Rotation),
		Gravity:  r.Gravity,
		Extra:    r.Extra,
	}
}

// RecordOf captures one engine.Input as a Record for the given tick index.
func RecordOf(tick int, in engine.Input) Record {
	return Record{
		Tick:     tick,
		Movement: in.Movement,
		Rotation: int(in.Rotation),
		Gravity:  in.Gravity,
		Extra:    in.Extra,
	}
}

// Writer appends Records to an underlying file as newline-delimited JSON.
type Writer struct {
	f   *os.File
	enc *json.Encoder
}

// Create truncates (or creates) path and returns a Writer over it.
func Create(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("replay: create %q: %w", path, err)
	}
	return &Writer{f: f, enc: json.NewEncoder(f)}, nil
}

// Write appends one record.
func (w *Writer) Write(r Record) error {
	return w.enc.Encode(r)
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	return w.f.Close()
}

// Reader plays back a recorded file one tick at a time.
type Reader struct {
	f   *os.File
	sc  *bufio.Scanner
}

// Open opens path for sequential replay.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %q: %w", path, err)
	}
	return &Reader{f: f, sc: bufio.NewScanner(f)}, nil
}

// Next returns the next recorded tick's input, or io.EOF once the file is
// exhausted.
func (r *Reader) Next() (Record, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Record{}, err
		}
		return Record{}, io.EOF
	}
	var rec Record
	if err := json.Unmarshal(r.sc.Bytes(), &rec); err != nil {
		return Record{}, fmt.Errorf("replay: malformed record: %w", err)
	}
	return rec, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}

// ReadAll reads every record in path into memory, for short replay files
// driven by a test or a bounded CLI run.
func ReadAll(path string) ([]Record, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var records []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
