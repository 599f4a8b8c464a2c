package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	score, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty store, got %d", score)
	}
}

func TestStoreHighScoreMonotonic(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		save int
		want int
	}{
		{300, 300},
		{500, 500},
		{200, 500},
		{500, 500},
		{501, 501},
	}

	for _, s := range steps {
		if err := store.SaveHighScore(s.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s.save, err)
		}
		got, err := store.LoadHighScore()
		if err != nil {
			t.Fatalf("LoadHighScore() failed: %v", err)
		}
		if got != s.want {
			t.Errorf("after saving %d: high score = %d, expected %d", s.save, got, s.want)
		}
	}
}

func TestStoreHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(1234); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if got != 1234 {
		t.Errorf("Expected 1234 after reopen, got %d", got)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{100, 50, 200} {
		id, err := store.SaveRun(RunRecord{Score: score, Coins: i, Ticks: score, Seed: int64(i)})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id == "" {
			t.Error("SaveRun() should generate a run ID")
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Seed != 2 || runs[0].Coins != 2 {
		t.Errorf("Run fields not round-tripped: %+v", runs[0])
	}
	if runs[0].ID == runs[1].ID {
		t.Error("Run IDs should be unique")
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("RunCount() = %d, expected 3", n)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}

func TestStoreSaveRunKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{ID: "fixed-id", Score: 7})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() = %q, expected fixed-id", id)
	}
	if _, err := store.SaveRun(RunRecord{ID: "fixed-id", Score: 8}); err == nil {
		t.Error("duplicate run ID should fail")
	}
}

func TestStoreClearRunsKeepsHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 10})
	store.SaveHighScore(10)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	n, _ := store.RunCount()
	if n != 0 {
		t.Errorf("RunCount() after clear = %d", n)
	}
	hs, _ := store.LoadHighScore()
	if hs != 10 {
		t.Errorf("high score after clear = %d, expected 10", hs)
	}
}
