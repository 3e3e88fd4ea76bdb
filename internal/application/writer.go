package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"lineio/internal/domain"
)

// DefaultWriteText is the line the writer emits when no text is given.
const DefaultWriteText = "Hello from C!"

// WriteLine opens the named file for writing, truncating any existing
// content, and writes text followed by a single newline. The handle is
// released on every exit path; a failed close is a failed write, since
// buffered data may not have reached the file.
func (app *App) WriteLine(ctx context.Context, path, text string) (int, error) {
	f, err := app.fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("could not create %s: %w", path, err)
	}

	n, err := io.WriteString(f, text+"\n")
	if err != nil {
		f.Close()
		return n, fmt.Errorf("failed to write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("failed to close %s: %v", path, err)
	}
	slog.Debug("wrote line", "path", path, "bytes", n)

	app.recordAudit(ctx, &domain.AuditEntry{
		Operation: domain.OperationWrite,
		Path:      path,
		Bytes:     int64(n),
	})

	return n, nil
}
