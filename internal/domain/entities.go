package domain

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultLineCapacity is the line buffer capacity used when none is configured.
const DefaultLineCapacity = 100

// LineBuffer is a fixed-capacity byte buffer holding at most one line.
// One byte of the capacity is reserved for the line terminator slot, so a
// buffer of capacity N holds at most N-1 content bytes.
type LineBuffer struct {
	data      []byte
	capacity  int
	truncated bool
}

// NewLineBuffer creates an empty buffer with the given capacity
func NewLineBuffer(capacity int) (*LineBuffer, error) {
	if capacity < 2 {
		return nil, fmt.Errorf("line buffer capacity must be at least 2, got %d", capacity)
	}
	return &LineBuffer{
		data:     make([]byte, 0, capacity-1),
		capacity: capacity,
	}, nil
}

// Fill reads from r until the first newline, capacity-1 bytes, or end of
// input, whichever comes first. The buffer never grows past capacity-1 bytes
// and is left in a defined state on every return; an empty reader yields an
// empty line.
func (b *LineBuffer) Fill(r io.Reader) error {
	b.data = b.data[:0]
	b.truncated = false

	var one [1]byte
	for len(b.data) < b.capacity-1 {
		n, err := r.Read(one[:])
		if n > 0 {
			b.data = append(b.data, one[0])
			if one[0] == '\n' {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %v", err)
		}
	}
	b.truncated = true
	return nil
}

// Len returns the number of bytes currently buffered, terminator included.
func (b *LineBuffer) Len() int {
	return len(b.data)
}

// Cap returns the configured capacity, including the reserved terminator slot.
func (b *LineBuffer) Cap() int {
	return b.capacity
}

// Truncated reports whether the last Fill stopped at capacity before finding
// a line terminator.
func (b *LineBuffer) Truncated() bool {
	return b.truncated
}

// Line returns the buffered content without its line terminator.
// A trailing \r\n is stripped as a pair.
func (b *LineBuffer) Line() string {
	s := string(b.data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s
}

// String returns the raw buffered bytes, terminator included.
func (b *LineBuffer) String() string {
	return string(b.data)
}

// Operation identifies the kind of file operation an audit entry records.
type Operation string

const (
	OperationRead  Operation = "read"
	OperationWrite Operation = "write"
)

// AuditEntry records one completed file operation.
type AuditEntry struct {
	ID         int64
	Operation  Operation
	Path       string
	Bytes      int64
	Truncated  bool
	RecordedAt time.Time
}
