package fsys

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
)

// file wraps a go-billy File and satisfies the File interface.
type file struct {
	file billy.File
}

func (f *file) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("fsys: close %q: %w", f.file.Name(), err)
	}
	return nil
}

func (f *file) Name() string {
	return f.file.Name()
}

func (f *file) Read(p []byte) (n int, err error) {
	n, err = f.file.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}
		return n, fmt.Errorf("fsys: read %q: %w", f.file.Name(), err)
	}
	return n, nil
}

func (f *file) Write(p []byte) (n int, err error) {
	n, err = f.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("fsys: write %q: %w", f.file.Name(), err)
	}
	return n, nil
}
