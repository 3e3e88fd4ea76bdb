package application

import (
	"context"
	"fmt"
	"log/slog"

	"lineio/internal/domain"
)

// ReadResult carries the outcome of a first-line read.
type ReadResult struct {
	Line      string
	Bytes     int
	Truncated bool
}

// ReadFirstLine opens the named file for reading and fills a bounded line
// buffer from it: at most capacity-1 bytes, stopping after the first newline.
// The handle is released on every exit path. An empty file yields an empty
// line.
func (app *App) ReadFirstLine(ctx context.Context, path string) (*ReadResult, error) {
	f, err := app.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := domain.NewLineBuffer(app.lineCapacity)
	if err != nil {
		return nil, err
	}
	if err := buf.Fill(f); err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	slog.Debug("read first line", "path", path, "bytes", buf.Len(), "truncated", buf.Truncated())

	app.recordAudit(ctx, &domain.AuditEntry{
		Operation: domain.OperationRead,
		Path:      path,
		Bytes:     int64(buf.Len()),
		Truncated: buf.Truncated(),
	})

	return &ReadResult{
		Line:      buf.Line(),
		Bytes:     buf.Len(),
		Truncated: buf.Truncated(),
	}, nil
}
