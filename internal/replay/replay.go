// Package replay records the inputs of a run and re-simulates them.
//
// A recording holds the configuration, the run seed and every gameplay
// action keyed by the tick it was applied before. Because the simulation
// is frame-coupled and seeded, replaying the same frames reproduces the
// same score exactly.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// FormatVersion is bumped whenever the encoded layout changes.
const FormatVersion = 1

// ErrMismatch is returned by Verify when a re-simulation disagrees with
// the recorded outcome.
var ErrMismatch = errors.New("replay: outcome mismatch")

// Frame is the gameplay input applied before tick Tick (0-based, counted
// from the start of the run).
type Frame struct {
	Tick    int           `msgpack:"t"`
	Actions []core.Action `msgpack:"a"`
}

// Recording is one complete run.
type Recording struct {
	Version    int                 `msgpack:"v"`
	ID         string              `msgpack:"id"`
	RecordedAt time.Time           `msgpack:"at"`
	Config     config.RunnerConfig `msgpack:"cfg"`
	Seed       int64               `msgpack:"seed"`
	Frames     []Frame             `msgpack:"frames"`
	FinalScore int                 `msgpack:"score"`
	Coins      int                 `msgpack:"coins"`
	Ticks      int                 `msgpack:"ticks"`
}

// New returns an empty recording for a run with the given config and seed.
func New(cfg config.RunnerConfig, seed int64) *Recording {
	return &Recording{
		Version:    FormatVersion,
		ID:         uuid.NewString(),
		RecordedAt: time.Now().UTC(),
		Config:     cfg,
		Seed:       seed,
	}
}

// Encode writes rec to w in msgpack form.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads one recording from r.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("replay: unsupported format version %d", rec.Version)
	}
	return &rec, nil
}

// WriteFile encodes rec into path.
func WriteFile(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile decodes the recording stored at path.
func ReadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
