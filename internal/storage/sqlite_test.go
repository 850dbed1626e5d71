package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		player, cpu int
		expected    string
	}{
		{3, 1, OutcomeWin},
		{0, 2, OutcomeLoss},
		{1, 1, OutcomeDraw},
		{0, 0, OutcomeDraw},
	}

	for _, tc := range tests {
		if got := Outcome(tc.player, tc.cpu); got != tc.expected {
			t.Errorf("Outcome(%d, %d) = %q, expected %q", tc.player, tc.cpu, got, tc.expected)
		}
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch("soccer", 3, 1, 180); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch("soccer", 0, 2, 180); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch("soccer", 1, 1, 90); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	// Different game should not leak into soccer queries
	if _, err := store.SaveMatch("other", 9, 0, 60); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	records, err := store.RecentMatches("soccer", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("RecentMatches returned %d records, expected 3", len(records))
	}

	// Newest first
	if records[0].PlayerScore != 1 || records[0].CPUScore != 1 {
		t.Errorf("newest record = %d-%d, expected 1-1", records[0].PlayerScore, records[0].CPUScore)
	}
	if records[0].Outcome != OutcomeDraw {
		t.Errorf("newest outcome = %q, expected draw", records[0].Outcome)
	}
	if records[2].Outcome != OutcomeWin {
		t.Errorf("oldest outcome = %q, expected win", records[2].Outcome)
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveMatch("soccer", i, 0, 10); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	records, err := store.RecentMatches("soccer", 5)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(records) != 5 {
		t.Errorf("RecentMatches returned %d records, expected 5", len(records))
	}

	// Zero limit falls back to the default of 10
	records, err = store.RecentMatches("soccer", 0)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(records) != 10 {
		t.Errorf("default limit returned %d records, expected 10", len(records))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty stats for a fresh game
	stats, err := store.Stats("soccer")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 0 {
		t.Errorf("fresh Played = %d, expected 0", stats.Played)
	}

	store.SaveMatch("soccer", 3, 1, 180) //nolint:errcheck // covered above
	store.SaveMatch("soccer", 0, 2, 180) //nolint:errcheck
	store.SaveMatch("soccer", 2, 2, 180) //nolint:errcheck

	stats, err = store.Stats("soccer")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Played != 3 {
		t.Errorf("Played = %d, expected 3", stats.Played)
	}
	if stats.Wins != 1 || stats.Losses != 1 || stats.Draws != 1 {
		t.Errorf("W/L/D = %d/%d/%d, expected 1/1/1", stats.Wins, stats.Losses, stats.Draws)
	}
	if stats.GoalsFor != 5 || stats.GoalsAgainst != 5 {
		t.Errorf("goals = %d/%d, expected 5/5", stats.GoalsFor, stats.GoalsAgainst)
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch("soccer", 1, 0, 60) //nolint:errcheck
	if err := store.ClearMatches("soccer"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	records, err := store.RecentMatches("soccer", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("after clear, %d records remain", len(records))
	}
}
