package fsys

import (
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// File is an open file handle. The operation that opens it owns it
// exclusively and must close it exactly once, on every exit path.
type File interface {
	io.Closer
	io.Reader
	io.Writer
	Name() string
}

// FS abstracts the filesystem file operations run against. Production code
// uses the OS-backed implementation; tests use the in-memory one.
type FS interface {
	// Open opens the named file for reading.
	Open(name string) (File, error)
	// Create opens the named file for writing, creating it if it does not
	// exist and truncating it if it does.
	Create(name string) (File, error)
	Exists(name string) (bool, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// BillyFS implements FS using go-billy.
type BillyFS struct {
	fs billy.Filesystem
}

// NewFS creates a BillyFS over the given go-billy filesystem.
func NewFS(fsys billy.Filesystem) *BillyFS {
	return &BillyFS{fs: fsys}
}

// NewOSFS creates an OS-backed filesystem rooted at path. Relative names
// resolve under the root.
func NewOSFS(path string) *BillyFS {
	return &BillyFS{fs: osfs.New(path)}
}

// NewInMemoryFS creates an empty in-memory filesystem.
func NewInMemoryFS() *BillyFS {
	return &BillyFS{fs: memfs.New()}
}

// Open implements FS.Open.
func (b *BillyFS) Open(name string) (File, error) {
	f, err := b.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("fsys: open %q: %w", name, err)
	}
	return &file{file: f}, nil
}

// Create implements FS.Create.
func (b *BillyFS) Create(name string) (File, error) {
	f, err := b.fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("fsys: create %q: %w", name, err)
	}
	return &file{file: f}, nil
}

// Exists implements FS.Exists.
func (b *BillyFS) Exists(name string) (bool, error) {
	_, err := b.fs.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("fsys: stat %q: %w", name, err)
	}
}

// ReadFile implements FS.ReadFile.
func (b *BillyFS) ReadFile(name string) ([]byte, error) {
	data, err := util.ReadFile(b.fs, name)
	if err != nil {
		return nil, fmt.Errorf("fsys: readfile %q: %w", name, err)
	}
	return data, nil
}

// WriteFile implements FS.WriteFile.
func (b *BillyFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := util.WriteFile(b.fs, name, data, perm); err != nil {
		return fmt.Errorf("fsys: writefile %q: %w", name, err)
	}
	return nil
}

// Raw returns the underlying go-billy filesystem.
func (b *BillyFS) Raw() billy.Filesystem {
	return b.fs
}
