package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some sprint results
	_, err = store.SaveScore("venture_sprint", "local", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("venture_sprint", "local", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("venture_sprint", "alice", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("venture", "local", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top sprint scores
	scores, err := store.TopScores("venture_sprint", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending, with profiles carried through
	if scores[0].Score != 200 || scores[0].Profile != "alice" {
		t.Errorf("Expected top entry 200/alice, got %d/%s", scores[0].Score, scores[0].Profile)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for the other game
	ventureScores, err := store.TopScores("venture", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(ventureScores) != 1 {
		t.Errorf("Expected 1 venture score, got %d", len(ventureScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", "local", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("venture_sprint")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("venture_sprint", "local", 100)
	store.SaveScore("venture_sprint", "local", 300)
	store.SaveScore("venture_sprint", "local", 200)

	high, err = store.HighScore("venture_sprint")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("venture_sprint", "local", 100)
	store.SaveScore("venture_sprint", "local", 200)
	store.SaveScore("venture", "local", 300)

	// Clear only sprint scores
	err = store.ClearScores("venture_sprint")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Sprint should be empty
	sprintScores, _ := store.TopScores("venture_sprint", 10)
	if len(sprintScores) != 0 {
		t.Errorf("Expected 0 sprint scores after clear, got %d", len(sprintScores))
	}

	// The other game should still have scores
	ventureScores, _ := store.TopScores("venture", 10)
	if len(ventureScores) != 1 {
		t.Errorf("Venture scores should not be affected by clearing the sprint")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", "local", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that nested directory creation works (we won't actually write to home)
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveSlotNumbers(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	slot := store.SaveSlot("local")

	// Missing key falls back to the default
	if got := slot.Number("bank.balance", 100); got != 100 {
		t.Errorf("Expected default 100 for missing key, got %v", got)
	}

	if err := slot.SetNumber("bank.balance", 2500.5); err != nil {
		t.Fatalf("SetNumber() failed: %v", err)
	}
	if got := slot.Number("bank.balance", 100); got != 2500.5 {
		t.Errorf("Expected 2500.5, got %v", got)
	}

	// Overwrite in place
	if err := slot.SetNumber("bank.balance", 0); err != nil {
		t.Fatalf("SetNumber() failed: %v", err)
	}
	if got := slot.Number("bank.balance", 100); got != 0 {
		t.Errorf("Stored zero should win over the default, got %v", got)
	}
}

func TestSaveSlotStrings(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	slot := store.SaveSlot("local")

	if got := slot.String("save.version", "v0"); got != "v0" {
		t.Errorf("Expected default v0 for missing key, got %q", got)
	}

	if err := slot.SetString("save.version", "v1"); err != nil {
		t.Fatalf("SetString() failed: %v", err)
	}
	if got := slot.String("save.version", "v0"); got != "v1" {
		t.Errorf("Expected v1, got %q", got)
	}

	// An empty stored string still wins over the default
	if err := slot.SetString("save.version", ""); err != nil {
		t.Fatalf("SetString() failed: %v", err)
	}
	if got := slot.String("save.version", "v0"); got != "" {
		t.Errorf("Stored empty string should win over the default, got %q", got)
	}
}

func TestSaveSlotTypeSwitch(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	slot := store.SaveSlot("local")

	// A key rewritten as a string loses its numeric value
	slot.SetNumber("mode", 1)
	slot.SetString("mode", "sprint")

	if got := slot.Number("mode", -1); got != -1 {
		t.Errorf("Expected numeric default after string overwrite, got %v", got)
	}
	if got := slot.String("mode", ""); got != "sprint" {
		t.Errorf("Expected sprint, got %q", got)
	}
}

func TestSaveSlotProfileIsolation(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	alice := store.SaveSlot("alice")
	bob := store.SaveSlot("bob")

	if alice.Profile() != "alice" || bob.Profile() != "bob" {
		t.Errorf("Slots should report their profile, got %q and %q", alice.Profile(), bob.Profile())
	}

	alice.SetNumber("bank.balance", 1000)
	bob.SetNumber("bank.balance", 5)

	if got := alice.Number("bank.balance", 0); got != 1000 {
		t.Errorf("Expected alice balance 1000, got %v", got)
	}
	if got := bob.Number("bank.balance", 0); got != 5 {
		t.Errorf("Expected bob balance 5, got %v", got)
	}
}

func TestDeleteSave(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	slot := store.SaveSlot("alice")
	slot.SetNumber("bank.balance", 1000)
	store.RecordWorth("alice", 1000)
	store.SaveScore("venture_sprint", "alice", 42)

	// An unrelated profile
	other := store.SaveSlot("bob")
	other.SetNumber("bank.balance", 7)

	if err := store.DeleteSave("alice"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}

	// Save and history are gone
	if got := slot.Number("bank.balance", -1); got != -1 {
		t.Errorf("Expected default after delete, got %v", got)
	}
	samples, err := store.WorthHistory("alice", 10)
	if err != nil {
		t.Fatalf("WorthHistory() failed: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("Expected empty worth history after delete, got %d samples", len(samples))
	}

	// Scores survive, other profiles untouched
	scores, _ := store.TopScores("venture_sprint", 10)
	if len(scores) != 1 {
		t.Errorf("Sprint scores should survive DeleteSave, got %d", len(scores))
	}
	if got := other.Number("bank.balance", -1); got != 7 {
		t.Errorf("Other profile should be untouched, got %v", got)
	}
}

func TestWorthHistory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, w := range []float64{100, 250, 900} {
		if err := store.RecordWorth("local", w); err != nil {
			t.Fatalf("RecordWorth() failed: %v", err)
		}
	}
	store.RecordWorth("alice", 5)

	samples, err := store.WorthHistory("local", 10)
	if err != nil {
		t.Fatalf("WorthHistory() failed: %v", err)
	}

	if len(samples) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(samples))
	}

	// Newest first
	if samples[0].Worth != 900 || samples[2].Worth != 100 {
		t.Errorf("Samples not in newest-first order: %v", samples)
	}

	// Limit applies
	limited, err := store.WorthHistory("local", 2)
	if err != nil {
		t.Fatalf("WorthHistory() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 samples with limit, got %d", len(limited))
	}
}

func TestGetGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("venture_sprint", "local", 100)
	store.SaveScore("venture_sprint", "local", 300)

	stats, err := store.GetGameStats("venture_sprint")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %v", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total 400, got %d", stats.TotalScore)
	}
}
