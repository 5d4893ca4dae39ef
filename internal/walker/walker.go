package walker

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mmr-tortoise/replacename/internal/model"
)

// Log messages and field names.
const (
	LogMsgListFailed = "skipping unreadable directory"
	LogMsgVisit      = "visiting file"
	LogFieldDir      = "dir"
	LogFieldPath     = "path"
)

// VisitFunc is called once per non-directory entry.
type VisitFunc func(entry model.FileEntry)

// Walker performs the recursive traversal.
type Walker struct {
	fs     FileSystem
	logger *zap.Logger
}

// New creates a Walker over fsys. A nil logger is replaced by zap.NewNop().
func New(fsys FileSystem, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{fs: fsys, logger: logger}
}

// FileSystem returns the filesystem the walker lists, so the renamer can
// rename through the same capability.
func (w *Walker) FileSystem() FileSystem {
	return w.fs
}

// Walk visits every file under root, descending into subdirectories
// depth-first in listing order. root itself is never visited.
func (w *Walker) Walk(root string, visit VisitFunc) {
	children, err := w.fs.ListChildren(root)
	if err != nil {
		w.logger.Debug(LogMsgListFailed, zap.String(LogFieldDir, root), zap.Error(err))
		return
	}

	for _, child := range children {
		if child.IsDir {
			w.Walk(filepath.Join(root, child.Name), visit)
			continue
		}

		entry := model.NewFileEntry(root, child.Name)
		w.logger.Debug(LogMsgVisit, zap.String(LogFieldPath, entry.Path()))
		visit(entry)
	}
}
