package model

import (
	"errors"
	"fmt"

	"github.com/itsatony/go-cuserr"
)

// Error kinds. Every error produced by the parser or the renamer wraps
// exactly one of these, so callers can branch with errors.Is.
var (
	// ErrMissingArgument reports a required option (m, from, to) absent from input.
	ErrMissingArgument = errors.New("missing argument")

	// ErrUnsupportedMode reports an -m value outside {r, pr, sr}.
	ErrUnsupportedMode = errors.New("unsupported mode")

	// ErrInvalidOption reports an optional flag with a value it does not accept.
	ErrInvalidOption = errors.New("invalid option value")

	// ErrRenameFailed reports a filesystem rename that did not succeed.
	ErrRenameFailed = errors.New("rename failed")
)

// Error codes used to categorize cuserr errors.
const (
	ErrCodeArgs   = "REPLACENAME_ARGS"
	ErrCodeRename = "REPLACENAME_RENAME"
)

// Error message constants.
const (
	ErrMsgMissingArgument = "required argument not found"
	ErrMsgUnsupportedMode = "mode not supported"
	ErrMsgInvalidOption   = "option value not supported"
	ErrMsgRenameFailed    = "could not rename file"
)

// Metadata keys attached to cuserr errors.
const (
	MetaKeyOption = "option"
	MetaKeyValue  = "value"
	MetaKeyMode   = "mode"
	MetaKeyPath   = "path"
	MetaKeyTarget = "target"
)

// NewMissingArgumentError reports that the -<option> flag was not given.
func NewMissingArgumentError(option string) error {
	return cuserr.WrapStdError(ErrMissingArgument, ErrCodeArgs,
		fmt.Sprintf("%s: -%s", ErrMsgMissingArgument, option)).
		WithMetadata(MetaKeyOption, option)
}

// NewUnsupportedModeError reports an unknown -m value.
func NewUnsupportedModeError(mode string) error {
	return cuserr.WrapStdError(ErrUnsupportedMode, ErrCodeArgs,
		fmt.Sprintf("%s: %q (valid: r, pr, sr)", ErrMsgUnsupportedMode, mode)).
		WithMetadata(MetaKeyMode, mode)
}

// NewInvalidOptionError reports an optional flag carrying an unusable value.
func NewInvalidOptionError(option, value string) error {
	return cuserr.WrapStdError(ErrInvalidOption, ErrCodeArgs,
		fmt.Sprintf("%s: -%s %q", ErrMsgInvalidOption, option, value)).
		WithMetadata(MetaKeyOption, option).
		WithMetadata(MetaKeyValue, value)
}

// NewRenameFailedError wraps a filesystem error from renaming path to target.
// The result matches both ErrRenameFailed and cause with errors.Is.
func NewRenameFailedError(path, target string, cause error) error {
	return cuserr.WrapStdError(fmt.Errorf("%w: %w", ErrRenameFailed, cause), ErrCodeRename,
		fmt.Sprintf("%s: %s -> %s", ErrMsgRenameFailed, path, target)).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyTarget, target)
}

// Detail returns the message of a cuserr error without the error kind it
// wraps, so the kind is not repeated in user-facing output. Other errors
// are returned as err.Error().
func Detail(err error) string {
	var customErr *cuserr.CustomError
	if errors.As(err, &customErr) {
		return customErr.Message
	}
	return err.Error()
}
