package application

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"lineio/internal/infrastructure/dblib"
	"lineio/internal/infrastructure/fsys"

	_ "github.com/mattn/go-sqlite3"
)

var testClockTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func testClock() time.Time {
	return testClockTime
}

// Test helper to create in-memory SQLite database
func createTestDatabase(t *testing.T) (*dblib.Queries, error) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	queries := dblib.New(db)
	if err := queries.InitializeDatabase(t.Context()); err != nil {
		return nil, err
	}
	return queries, nil
}

// MockFile fails on demand so handle-release paths can be exercised
type MockFile struct {
	name       string
	data       []byte
	readErr    error
	writeErr   error
	closeErr   error
	written    []byte
	closeCalls int
}

func (f *MockFile) Name() string {
	return f.name
}

func (f *MockFile) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		if f.readErr != nil {
			return 0, f.readErr
		}
		return 0, io.EOF
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func (f *MockFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.written = append(f.written, p...)
	return len(p), nil
}

func (f *MockFile) Close() error {
	f.closeCalls++
	return f.closeErr
}

// MockFileSystem hands out a single prepared file handle
type MockFileSystem struct {
	file *MockFile
}

func (m *MockFileSystem) Open(name string) (fsys.File, error) {
	return m.file, nil
}

func (m *MockFileSystem) Create(name string) (fsys.File, error) {
	return m.file, nil
}

func (m *MockFileSystem) Exists(name string) (bool, error) {
	return m.file != nil, nil
}

func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *MockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return fmt.Errorf("not implemented")
}

// Test helper to create an App over an in-memory filesystem and database
func createTestApp(t *testing.T) (*App, *fsys.BillyFS, *dblib.Queries, error) {
	t.Helper()

	queries, err := createTestDatabase(t)
	if err != nil {
		return nil, nil, nil, err
	}
	fs := fsys.NewInMemoryFS()
	app := NewApp(queries, fs, testClock, 0)
	return app, fs, queries, nil
}
