package ledger

import (
	"path/filepath"
	"testing"
)

func openLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "curation.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestLedgerRoundTrip(t *testing.T) {
	t.Parallel()

	l := openLedger(t)
	if err := l.RecordRun("run-1", 0.6, 2, 1); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := l.RecordMove("run-1", 1, 3, "What do you call a bear with no teeth? A gummy bear."); err != nil {
		t.Fatalf("RecordMove: %v", err)
	}
	if err := l.RecordMove("run-1", 2, 4, "What do you call a fish that needs help with vocals? Auto-tuna!"); err != nil {
		t.Fatalf("RecordMove: %v", err)
	}

	runs, err := l.Runs()
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Runs = %d, want 1", len(runs))
	}
	run := runs[0]
	if run.RunID != "run-1" || run.MinConfidence != 0.6 || run.Applied != 2 || run.Skipped != 1 {
		t.Fatalf("run = %+v", run)
	}
	if run.CreatedAt == "" {
		t.Fatal("missing created_at")
	}

	moves, err := l.Moves("run-1")
	if err != nil {
		t.Fatalf("Moves: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("Moves = %d, want 2", len(moves))
	}
	if moves[0].FromLevel != 1 || moves[0].ToLevel != 3 {
		t.Fatalf("first move = %+v", moves[0])
	}
	if moves[1].FromLevel != 2 || moves[1].ToLevel != 4 {
		t.Fatalf("second move = %+v", moves[1])
	}
}

func TestLedger_DuplicateRunIDRejected(t *testing.T) {
	t.Parallel()

	l := openLedger(t)
	if err := l.RecordRun("run-1", 0.4, 0, 0); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := l.RecordRun("run-1", 0.4, 0, 0); err == nil {
		t.Fatal("expected primary key violation for duplicate run id")
	}
}

func TestLedger_MovesForUnknownRunIsEmpty(t *testing.T) {
	t.Parallel()

	l := openLedger(t)
	moves, err := l.Moves("absent")
	if err != nil {
		t.Fatalf("Moves: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("Moves = %+v, want empty", moves)
	}
}
