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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{12, 4, 31} {
		if _, err := store.SaveScore("squat", "medium", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different mode
	if _, err := store.SaveScore("lunge", "hard", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("squat", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 squat scores, got %d", len(scores))
	}
	if scores[0].Score != 31 || scores[1].Score != 12 || scores[2].Score != 4 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Mode != "squat" || scores[0].Difficulty != "medium" {
		t.Errorf("Score fields not round-tripped: %+v", scores[0])
	}

	lungeScores, err := store.TopScores("lunge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(lungeScores) != 1 {
		t.Errorf("Expected 1 lunge score, got %d", len(lungeScores))
	}
}

func TestStoreTopScoresAllModes(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("squat", "easy", 10)
	store.SaveScore("lunge", "easy", 20)
	store.SaveScore("armraise", "easy", 30)

	scores, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Empty mode should match all modes, got %d rows", len(scores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("squat", "medium", (i+1)*10)
	}

	scores, err := store.TopScores("squat", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("squat")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty mode, got %d", high)
	}

	store.SaveScore("squat", "medium", 15)
	store.SaveScore("squat", "hard", 42)
	store.SaveScore("squat", "easy", 8)

	high, err = store.HighScore("squat")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("squat", "medium", 10)
	store.SaveScore("lunge", "medium", 20)

	if err := store.ClearScores("squat"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("squat", 10); len(scores) != 0 {
		t.Errorf("Squat scores should be gone, got %d", len(scores))
	}
	if scores, _ := store.TopScores("lunge", 10); len(scores) != 1 {
		t.Errorf("Lunge scores should survive, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("squat", "medium", 10)
	store.SaveScore("squat", "medium", 30)
	store.SaveScore("lunge", "hard", 7)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	squat, ok := stats["squat"]
	if !ok {
		t.Fatal("Expected squat stats")
	}
	if squat.RunCount != 2 || squat.HighScore != 30 || squat.AvgScore != 20 {
		t.Errorf("Unexpected squat stats: %+v", squat)
	}
	if _, ok := stats["lunge"]; !ok {
		t.Error("Expected lunge stats")
	}
}
