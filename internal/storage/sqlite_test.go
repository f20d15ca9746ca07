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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{PatternID: "glider", RuleID: "life_infinite", Steps: 40, Live: 5, Width: 12, Height: 12, Board: "..."},
		{PatternID: "block", RuleID: "life", Steps: 0, Converged: true, Live: 4, Width: 4, Height: 4, Board: "....\n.##.\n.##.\n...."},
		{PatternID: "glider", RuleID: "life_infinite", Steps: 12, Live: 5, Width: 7, Height: 7},
	}
	var lastID int64
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id <= lastID {
			t.Errorf("IDs should increase, got %d after %d", id, lastID)
		}
		lastID = id
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// Same timestamp resolution: newest ID first.
	if recent[0].Steps != 12 || recent[2].Steps != 40 {
		t.Errorf("runs should be newest first, got steps %d..%d", recent[0].Steps, recent[2].Steps)
	}

	gliders, err := store.RunsForPattern("glider", 10)
	if err != nil {
		t.Fatalf("RunsForPattern() failed: %v", err)
	}
	if len(gliders) != 2 {
		t.Errorf("Expected 2 glider runs, got %d", len(gliders))
	}

	block, err := store.RunByID(recent[1].ID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if block == nil || !block.Converged || block.Board != runs[1].Board || block.RuleID != "life" {
		t.Errorf("RunByID() = %+v", block)
	}
	if block.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.RunByID(9999)
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 5 {
		if _, err := store.SaveRun(Run{PatternID: "p", RuleID: "life", Steps: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("Expected 2 runs, got %d", len(runs))
	}
}

func TestStoreStatsAndClear(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []Run{
		{PatternID: "a", RuleID: "life", Steps: 3, Live: 2},
		{PatternID: "a", RuleID: "life", Steps: 7, Live: 4},
		{PatternID: "b", RuleID: "seating", Steps: 5, Live: 37},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	a := stats["a"]
	if a == nil || a.Runs != 2 || a.MaxSteps != 7 || a.AvgLive != 3 {
		t.Errorf("stats[a] = %+v", a)
	}

	if err := store.ClearRuns("a"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.RunsForPattern("a", 10); len(runs) != 0 {
		t.Errorf("Expected no runs for a, got %d", len(runs))
	}
	if runs, _ := store.RunsForPattern("b", 10); len(runs) != 1 {
		t.Errorf("ClearRuns should leave other patterns, got %d", len(runs))
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(\"\") failed: %v", err)
	}
	if runs, _ := store.RecentRuns(10); len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}
