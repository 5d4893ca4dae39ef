package walker

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Child is one entry of a directory listing.
type Child struct {
	// Name is the leaf name of the entry.
	Name string

	// IsDir reports whether the entry is a directory to recurse into.
	IsDir bool
}

// FileSystem is the filesystem capability the walker and the renamer need.
type FileSystem interface {
	// ListChildren returns the entries of dir in listing order.
	ListChildren(dir string) ([]Child, error)

	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath string) error
}

// OSFileSystem implements FileSystem on the host filesystem.
//
// It is stateless; the struct exists so it can be passed wherever a
// FileSystem is expected.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem instance.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ListChildren lists dir with os.ReadDir. Entries come back sorted by name,
// which callers must not rely on.
//
// Symlinks are resolved: a link to a directory is reported as a directory
// and walked into. A dangling link is reported as a file.
func (OSFileSystem) ListChildren(dir string) ([]Child, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	children := make([]Child, 0, len(entries))
	for _, entry := range entries {
		children = append(children, Child{Name: entry.Name(), IsDir: isDir(dir, entry)})
	}
	return children, nil
}

func isDir(dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Rename moves oldPath to newPath with os.Rename. On POSIX systems an
// existing file at newPath is replaced; renaming a path onto itself
// succeeds without changes.
func (OSFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}
