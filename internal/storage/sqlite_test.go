package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/core"
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

func run(variant string, harvested, money int) core.RunSummary {
	return core.RunSummary{
		Variant:    variant,
		Difficulty: "normal",
		Seed:       42,
		Money:      money,
		Harvested:  harvested,
		Eliminated: 1,
		Consumed:   2,
		Duration:   61.5,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

	for _, r := range []core.RunSummary{
		run("farm", 5, 100),
		run("farm", 2, 400),
		run("farm", 9, 10),
		run("farm_classic", 20, 0),
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("farm", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Ranked by harvested, descending
	want := []int{9, 5, 2}
	for i, r := range runs {
		if r.Harvested != want[i] {
			t.Errorf("runs[%d].Harvested = %d, expected %d", i, r.Harvested, want[i])
		}
	}

	first := runs[0]
	if first.Seed != 42 || first.Difficulty != "normal" || first.Consumed != 2 || first.Duration != 61.5 {
		t.Errorf("round trip lost fields: %+v", first)
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	classic, err := store.TopRuns("farm_classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic run, got %d", len(classic))
	}
}

func TestStoreTieBreaksOnMoney(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("farm", 3, 50))
	store.SaveRun(run("farm", 3, 500))

	runs, err := store.TopRuns("farm", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].Money != 500 {
		t.Errorf("equal harvests should rank by money, got %+v", runs)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(run("test", i+1, 0))
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Harvested != 5 || runs[1].Harvested != 4 || runs[2].Harvested != 3 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("farm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveRun(run("farm", 1, 0))
	store.SaveRun(run("farm", 3, 0))
	store.SaveRun(run("farm", 2, 0))

	high, err = store.HighScore("farm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3 {
		t.Errorf("Expected high score of 3, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("farm", 1, 0))
	store.SaveRun(run("farm", 2, 0))
	store.SaveRun(run("farm_classic", 3, 0))

	if err := store.ClearRuns("farm"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	farmRuns, _ := store.TopRuns("farm", 10)
	if len(farmRuns) != 0 {
		t.Errorf("Expected 0 farm runs after clear, got %d", len(farmRuns))
	}

	classicRuns, _ := store.TopRuns("farm_classic", 10)
	if len(classicRuns) != 1 {
		t.Error("Classic runs should not be affected by clearing farm")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetVariantStats("farm")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(run("farm", 2, 0))
	store.SaveRun(run("farm", 4, 0))
	store.SaveRun(run("farm_classic", 7, 0))

	stats, err := store.GetVariantStats("farm")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestHarvest != 4 || stats.AvgHarvest != 3 || stats.TotalConsumed != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	all, err := store.GetAllVariantStats()
	if err != nil {
		t.Fatalf("GetAllVariantStats() failed: %v", err)
	}
	if len(all) != 2 || all["farm_classic"].BestHarvest != 7 {
		t.Errorf("Unexpected all stats: %+v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
