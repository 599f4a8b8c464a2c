package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingIsZero(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "highscore"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	got, err := fs.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("Expected 0 for missing file, got %d", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, _ := NewFileStore(filepath.Join(t.TempDir(), "sub", "highscore"))

	if err := fs.SaveHighScore(420); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	data, err := os.ReadFile(fs.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "420\n" {
		t.Errorf("file contents = %q, expected decimal integer", data)
	}

	got, err := fs.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if got != 420 {
		t.Errorf("Expected 420, got %d", got)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"text", "not a number"},
		{"negative", "-5"},
		{"float", "12.5"},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			fs, _ := NewFileStore(path)

			_, err := fs.LoadHighScore()
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("LoadHighScore() error = %v, expected ErrCorrupt", err)
			}
		})
	}
}

func TestFileStoreToleratesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore")
	os.WriteFile(path, []byte("  77 \n"), 0o644)
	fs, _ := NewFileStore(path)

	got, err := fs.LoadHighScore()
	if err != nil || got != 77 {
		t.Errorf("LoadHighScore() = %d, %v; expected 77", got, err)
	}
}
