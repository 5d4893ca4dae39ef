package renamer

import (
	"go.uber.org/zap"

	"github.com/mmr-tortoise/replacename/internal/model"
)

// Change records one successful rename.
type Change struct {
	Path   string `json:"path" yaml:"path"`
	Target string `json:"target" yaml:"target"`
}

// Failure records one rename that returned an error.
type Failure struct {
	Path   string `json:"path" yaml:"path"`
	Target string `json:"target" yaml:"target"`
	Error  string `json:"error" yaml:"error"`
}

// Report aggregates the outcome of a run. It is owned by the goroutine
// running the batch and is not safe for concurrent use.
type Report struct {
	Root string     `json:"root" yaml:"root"`
	Mode model.Mode `json:"mode" yaml:"mode"`
	From string     `json:"from" yaml:"from"`
	To   string     `json:"to" yaml:"to"`

	Visited   int `json:"visited" yaml:"visited"`
	Renamed   int `json:"renamed" yaml:"renamed"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Failed    int `json:"failed" yaml:"failed"`

	// Changes lists renames that changed a name, in visit order.
	Changes []Change `json:"changes" yaml:"changes"`

	// Failures lists failed renames, in visit order.
	Failures []Failure `json:"failures" yaml:"failures"`
}

// NewReport creates an empty report for a run over root.
func NewReport(root string, opts Options) *Report {
	return &Report{
		Root: root,
		Mode: opts.Mode,
		From: opts.From,
		To:   opts.To,
		// Empty slices so JSON shows [] instead of null.
		Changes:  []Change{},
		Failures: []Failure{},
	}
}

// Record adds the outcome of one file to the report.
func (r *Report) Record(outcome Outcome, entry, target model.FileEntry, err error) {
	r.Visited++

	switch outcome {
	case OutcomeRenamed:
		r.Renamed++
		r.Changes = append(r.Changes, Change{Path: entry.Path(), Target: target.Path()})
	case OutcomeUnchanged:
		r.Unchanged++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
		msg := ""
		if err != nil {
			msg = err.Error()
		}
		r.Failures = append(r.Failures, Failure{Path: entry.Path(), Target: target.Path(), Error: msg})
	}
}

// HasFailures reports whether any rename failed.
func (r *Report) HasFailures() bool {
	return r.Failed > 0
}

// Fields returns the counters as zap fields for the end-of-run log line.
func (r *Report) Fields() []zap.Field {
	return []zap.Field{
		zap.String(LogFieldRoot, r.Root),
		zap.Int("visited", r.Visited),
		zap.Int("renamed", r.Renamed),
		zap.Int("unchanged", r.Unchanged),
		zap.Int("skipped", r.Skipped),
		zap.Int("failed", r.Failed),
	}
}
