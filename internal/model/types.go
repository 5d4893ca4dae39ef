// Package model defines the domain types for the replacename CLI.
//
// All types in this package are transient: they are produced by the
// argument parser or the tree walker and consumed immediately by the
// renamer. There is no persistent state.
package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Mode selects which transform the renamer applies to each base name.
// It is a closed set: every switch over Mode must handle all three values,
// and ParseMode is the only way to turn user input into a Mode.
type Mode int

const (
	// ModeReplace replaces every occurrence of "from" in the base name.
	ModeReplace Mode = iota + 1

	// ModePrefixReplace replaces "from" only when the base name starts with it.
	ModePrefixReplace

	// ModeSuffixReplace replaces "from" only when the base name ends with it.
	ModeSuffixReplace
)

// Short mode codes accepted on the command line via -m.
const (
	ModeCodeReplace       = "r"
	ModeCodePrefixReplace = "pr"
	ModeCodeSuffixReplace = "sr"
)

// String returns the long name of the mode as shown in usage text and logs.
func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModePrefixReplace:
		return "prefixReplace"
	case ModeSuffixReplace:
		return "suffixReplace"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Code returns the short command-line code for the mode ("r", "pr", "sr").
// Unknown values return an empty string.
func (m Mode) Code() string {
	switch m {
	case ModeReplace:
		return ModeCodeReplace
	case ModePrefixReplace:
		return ModeCodePrefixReplace
	case ModeSuffixReplace:
		return ModeCodeSuffixReplace
	default:
		return ""
	}
}

// IsValid checks whether the Mode value is one of the three defined modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeReplace, ModePrefixReplace, ModeSuffixReplace:
		return true
	default:
		return false
	}
}

// MarshalText lets JSON and YAML encoders print the long mode name
// instead of the underlying integer.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMode converts a short mode code to a Mode.
//
// Matching is exact: the argument parser lowercases the whole command line
// before it gets here, so "R" never reaches this function as "R".
// Returns an ErrUnsupportedMode error for anything outside {r, pr, sr}.
func ParseMode(code string) (Mode, error) {
	switch code {
	case ModeCodeReplace:
		return ModeReplace, nil
	case ModeCodePrefixReplace:
		return ModePrefixReplace, nil
	case ModeCodeSuffixReplace:
		return ModeSuffixReplace, nil
	default:
		return 0, NewUnsupportedModeError(code)
	}
}

// OutputFormat selects how the end-of-run summary is printed.
type OutputFormat string

const (
	// FormatText prints a short human-readable summary (default).
	FormatText OutputFormat = "text"

	// FormatJSON prints the summary as indented JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML prints the summary as YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat is one of the supported formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
// An empty string selects FormatText.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatText, nil
	}
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", NewInvalidOptionError(OptionOutput, s)
	}
	return format, nil
}

// Option names recognized by the argument parser.
const (
	OptionMode    = "m"
	OptionFrom    = "from"
	OptionTo      = "to"
	OptionVerbose = "verbose"
	OptionOutput  = "output"
	OptionVersion = "version"
)

// Invocation is the validated result of parsing the command line.
// It is built once per process and never modified afterwards.
type Invocation struct {
	// Command is the joined, lowercased argument string the options were
	// extracted from. Echoed in verbose mode.
	Command string

	// Mode is the selected rename strategy.
	Mode Mode

	// From is the search string. Already lowercased.
	From string

	// To is the replacement string. Already lowercased.
	To string

	// Options holds every -key value pair seen, including unknown keys.
	// Arity-0 flags are recorded with the value "true".
	Options map[string]string

	// Verbose enables debug logging of the resolved options and each rename.
	Verbose bool

	// Format selects the summary output format.
	Format OutputFormat
}

// FileEntry is a file visited by the tree walker, split into its parent
// directory, base name and extension.
//
// The extension is the substring after the LAST "." in the leaf name and
// does not include the dot. A leaf with no dot has an empty extension.
// A leaf ending in "." also has an empty extension, so Leaf() drops the
// trailing dot for it.
type FileEntry struct {
	// Dir is the parent directory path.
	Dir string

	// Base is the leaf name without its extension and separating dot.
	Base string

	// Ext is the extension without the dot. Empty if none.
	Ext string
}

// NewFileEntry builds a FileEntry from a parent directory and a leaf name.
func NewFileEntry(dir, leaf string) FileEntry {
	base, ext := SplitLeaf(leaf)
	return FileEntry{Dir: dir, Base: base, Ext: ext}
}

// SplitLeaf splits a leaf name at its last "." into base name and extension.
//
//	"foo_bar.txt"    → ("foo_bar", "txt")
//	"archive.tar.gz" → ("archive.tar", "gz")
//	"README"         → ("README", "")
//	".bashrc"        → ("", "bashrc")
func SplitLeaf(leaf string) (base, ext string) {
	idx := strings.LastIndex(leaf, ".")
	if idx < 0 {
		return leaf, ""
	}
	return leaf[:idx], leaf[idx+1:]
}

// JoinLeaf reattaches an extension to a base name. An empty extension
// yields the base name alone, never a trailing dot.
func JoinLeaf(base, ext string) string {
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// Leaf returns the leaf name rebuilt from Base and Ext.
func (e FileEntry) Leaf() string {
	return JoinLeaf(e.Base, e.Ext)
}

// Path returns the full path of the entry.
func (e FileEntry) Path() string {
	return filepath.Join(e.Dir, e.Leaf())
}

// WithBase returns a copy of the entry with a different base name,
// keeping its directory and extension.
func (e FileEntry) WithBase(base string) FileEntry {
	e.Base = base
	return e
}

// ExitCode defines the process exit codes of the CLI.
type ExitCode int

const (
	// ExitSuccess indicates the run completed, or help/version was shown.
	// Per-file rename failures do not change the exit code; they are
	// reported in the summary.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an argument or setup error. Nothing was renamed.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
