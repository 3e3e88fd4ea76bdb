package application

import (
	"testing"

	"lineio/internal/domain"
	"lineio/internal/infrastructure/fsys"
)

func TestHistoryNewestFirst(t *testing.T) {
	app, fs, _, err := createTestApp(t)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	if err := fs.WriteFile("test.txt", []byte("hi\n"), 0o644); err != nil {
		t.Fatalf("Failed to seed test file: %v", err)
	}

	if _, err := app.ReadFirstLine(t.Context(), "test.txt"); err != nil {
		t.Fatalf("Failed to read first line: %v", err)
	}
	if _, err := app.WriteLine(t.Context(), "output.txt", DefaultWriteText); err != nil {
		t.Fatalf("Failed to write line: %v", err)
	}

	entries, err := app.History(t.Context(), "")
	if err != nil {
		t.Fatalf("Failed to list history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(entries))
	}
	if entries[0].Operation != domain.OperationWrite {
		t.Errorf("Expected the write to be listed first, got %s", entries[0].Operation)
	}
}

func TestHistoryByPath(t *testing.T) {
	app, fs, _, err := createTestApp(t)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	if err := fs.WriteFile("test.txt", []byte("hi\n"), 0o644); err != nil {
		t.Fatalf("Failed to seed test file: %v", err)
	}

	if _, err := app.ReadFirstLine(t.Context(), "test.txt"); err != nil {
		t.Fatalf("Failed to read first line: %v", err)
	}
	if _, err := app.WriteLine(t.Context(), "output.txt", DefaultWriteText); err != nil {
		t.Fatalf("Failed to write line: %v", err)
	}

	entries, err := app.History(t.Context(), "output.txt")
	if err != nil {
		t.Fatalf("Failed to list history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 history entry for output.txt, got %d", len(entries))
	}
	if entries[0].Path != "output.txt" {
		t.Errorf("Expected path output.txt, got %s", entries[0].Path)
	}
}

func TestClearHistory(t *testing.T) {
	app, _, _, err := createTestApp(t)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}

	if _, err := app.WriteLine(t.Context(), "output.txt", DefaultWriteText); err != nil {
		t.Fatalf("Failed to write line: %v", err)
	}

	deleted, err := app.ClearHistory(t.Context())
	if err != nil {
		t.Fatalf("Failed to clear history: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deleted entry, got %d", deleted)
	}

	entries, err := app.History(t.Context(), "")
	if err != nil {
		t.Fatalf("Failed to list history: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty history after clear, got %d entries", len(entries))
	}
}

func TestHistoryDisabled(t *testing.T) {
	app := NewApp(nil, fsys.NewInMemoryFS(), nil, 0)

	if _, err := app.History(t.Context(), ""); err == nil {
		t.Errorf("History without a database should have failed")
	}
	if _, err := app.ClearHistory(t.Context()); err == nil {
		t.Errorf("ClearHistory without a database should have failed")
	}
}
