package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrCorrupt is returned when a high score file exists but does not hold
// a non-negative decimal integer.
var ErrCorrupt = errors.New("storage: corrupt high score file")

// FileStore keeps the high score as a decimal integer in a plain file.
// It satisfies runner.HighScoreStore.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore at path. The file is created on the
// first save.
func NewFileStore(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// LoadHighScore reads the stored value. A missing file yields 0.
func (f *FileStore) LoadHighScore() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %s", ErrCorrupt, f.path)
	}
	return score, nil
}

// SaveHighScore writes score, replacing the file atomically.
func (f *FileStore) SaveHighScore(score int) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: cannot replace high score: %w", err)
	}
	return nil
}
