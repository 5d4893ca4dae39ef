package renamer

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mmr-tortoise/replacename/internal/model"
	"github.com/mmr-tortoise/replacename/internal/walker"
)

// Log messages and field names.
const (
	LogMsgRenamed      = "renamed file"
	LogMsgUnchanged    = "name unchanged"
	LogMsgSkipped      = "no match, skipping"
	LogMsgRenameFailed = "rename failed, continuing"
	LogMsgRunStarted   = "rename run started"
	LogMsgRunFinished  = "rename run finished"

	LogFieldPath   = "path"
	LogFieldTarget = "target"
	LogFieldMode   = "mode"
	LogFieldFrom   = "from"
	LogFieldTo     = "to"
	LogFieldRoot   = "root"
)

// Outcome is the result of applying the renamer to one file.
type Outcome string

const (
	// OutcomeRenamed means the file now has a different name.
	OutcomeRenamed Outcome = "renamed"

	// OutcomeUnchanged means a rename was issued but the name stayed the same
	// (replace mode with no occurrence of from, or from equal to to).
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeSkipped means the prefix or suffix did not match; no rename was issued.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means the rename call returned an error.
	OutcomeFailed Outcome = "failed"
)

// String returns the string representation of Outcome.
func (o Outcome) String() string {
	return string(o)
}

// Options configures a Renamer.
type Options struct {
	Mode model.Mode
	From string
	To   string
}

// Renamer applies one mode's transform to files and renames them through
// a walker.FileSystem.
type Renamer struct {
	fs     walker.FileSystem
	opts   Options
	logger *zap.Logger
}

// New creates a Renamer. A nil logger is replaced by zap.NewNop().
func New(fsys walker.FileSystem, opts Options, logger *zap.Logger) *Renamer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renamer{fs: fsys, opts: opts, logger: logger}
}

// Transform computes the new base name for base under mode.
//
// applies is false when the mode does not act on this base name (prefix or
// suffix mismatch); the caller must not rename in that case. Replace mode
// always applies, even if base does not contain from.
func Transform(mode model.Mode, base, from, to string) (newBase string, applies bool, err error) {
	switch mode {
	case model.ModeReplace:
		return strings.ReplaceAll(base, from, to), true, nil

	case model.ModePrefixReplace:
		if !strings.HasPrefix(base, from) {
			return base, false, nil
		}
		return to + base[len(from):], true, nil

	case model.ModeSuffixReplace:
		if !strings.HasSuffix(base, from) {
			return base, false, nil
		}
		return base[:len(base)-len(from)] + to, true, nil

	default:
		return base, false, model.NewUnsupportedModeError(fmt.Sprint(int(mode)))
	}
}

// Apply transforms one file and renames it in place.
//
// The returned target is the entry the file was (or would have been)
// renamed to. A non-nil error is either ErrUnsupportedMode or
// ErrRenameFailed.
func (r *Renamer) Apply(entry model.FileEntry) (Outcome, model.FileEntry, error) {
	newBase, applies, err := Transform(r.opts.Mode, entry.Base, r.opts.From, r.opts.To)
	if err != nil {
		return OutcomeFailed, entry, err
	}

	path := entry.Path()
	if !applies {
		r.logger.Debug(LogMsgSkipped, zap.String(LogFieldPath, path))
		return OutcomeSkipped, entry, nil
	}

	target := entry.WithBase(newBase)
	targetPath := target.Path()

	if err := r.fs.Rename(path, targetPath); err != nil {
		renameErr := model.NewRenameFailedError(path, targetPath, err)
		r.logger.Warn(LogMsgRenameFailed,
			zap.String(LogFieldPath, path),
			zap.String(LogFieldTarget, targetPath),
			zap.Error(err),
		)
		return OutcomeFailed, target, renameErr
	}

	if targetPath == path {
		r.logger.Debug(LogMsgUnchanged, zap.String(LogFieldPath, path))
		return OutcomeUnchanged, target, nil
	}

	r.logger.Debug(LogMsgRenamed, zap.String(LogFieldPath, path), zap.String(LogFieldTarget, targetPath))
	return OutcomeRenamed, target, nil
}

// Run walks root with w and applies the renamer to every file, collecting
// a Report. Rename failures are recorded and the walk continues. An
// invalid mode is rejected before anything is visited.
func (r *Renamer) Run(w *walker.Walker, root string) (*Report, error) {
	if !r.opts.Mode.IsValid() {
		return nil, model.NewUnsupportedModeError(fmt.Sprint(int(r.opts.Mode)))
	}

	r.logger.Info(LogMsgRunStarted,
		zap.String(LogFieldRoot, root),
		zap.Stringer(LogFieldMode, r.opts.Mode),
		zap.String(LogFieldFrom, r.opts.From),
		zap.String(LogFieldTo, r.opts.To),
	)

	report := NewReport(root, r.opts)
	w.Walk(root, func(entry model.FileEntry) {
		outcome, target, err := r.Apply(entry)
		report.Record(outcome, entry, target, err)
	})

	r.logger.Info(LogMsgRunFinished, report.Fields()...)
	return report, nil
}
