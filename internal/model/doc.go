// Package model defines the domain types and value objects for the
// replacename CLI.
//
// This package contains plain data structures shared by the argument
// parser, the tree walker, and the renamer. Nothing here touches the
// filesystem: a FileEntry is a transient value built at visit time and
// discarded once its rename has been attempted.
//
// The package also defines exit codes (ExitCode), the CLIError type that
// carries them, and the error kinds (ErrMissingArgument, ErrUnsupportedMode,
// ErrInvalidOption, ErrRenameFailed) matched with errors.Is.
package model
