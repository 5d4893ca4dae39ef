package args

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmr-tortoise/replacename/internal/model"
)

var (
	// ErrHelp is returned by Parse when -help or --help appears anywhere
	// in the command line. The caller prints usage and exits successfully.
	ErrHelp = errors.New("help requested")

	// ErrVersion is returned by Parse when -version is given.
	ErrVersion = errors.New("version requested")
)

// helpMarker is matched as a plain substring of the lowercased command
// line. "--help" contains it too.
const helpMarker = "-help"

// FlagSpec describes one flag the parser knows about.
type FlagSpec struct {
	// Name is the flag name without leading dashes.
	Name string

	// Required flags cause ErrMissingArgument when absent.
	Required bool

	// Arity is the number of value tokens the flag consumes: 0 or 1.
	Arity int

	// Usage is the one-line description shown in help output.
	Usage string
}

// Flags is the flag table, in the order flags are listed in usage text.
var Flags = []FlagSpec{
	{Name: model.OptionMode, Required: true, Arity: 1, Usage: "rename mode: r, pr or sr"},
	{Name: model.OptionFrom, Required: true, Arity: 1, Usage: "text to look for in each base name"},
	{Name: model.OptionTo, Required: true, Arity: 1, Usage: "replacement text"},
	{Name: model.OptionVerbose, Arity: 0, Usage: "log resolved options and every rename to stderr"},
	{Name: model.OptionOutput, Arity: 1, Usage: "summary format: text, json or yaml"},
	{Name: model.OptionVersion, Arity: 0, Usage: "print version information and exit"},
}

// modes lists the rename modes in usage order.
var modes = []model.Mode{model.ModeReplace, model.ModePrefixReplace, model.ModeSuffixReplace}

// unknownArity is the arity assumed for flags missing from the table.
const unknownArity = 1

// lookupFlag returns the spec for name, or a synthetic arity-1 spec for
// unknown flags.
func lookupFlag(name string) FlagSpec {
	for _, f := range Flags {
		if f.Name == name {
			return f
		}
	}
	return FlagSpec{Name: name, Arity: unknownArity}
}

// Normalize joins argv with single spaces and lowercases the result.
func Normalize(argv []string) string {
	return strings.ToLower(strings.Join(argv, " "))
}

// Tokenize extracts -key value pairs from a normalized command line.
//
// The line is split on single spaces, so an argument with a leading space
// leaves an empty token behind. A token of one or two dashes followed
// by word characters names a flag. Arity-1 flags take the next token
// verbatim, even if it starts with a dash; arity-0 flags are recorded as
// "true". An arity-1 flag followed by an empty token or by nothing is
// dropped. Later occurrences of a key overwrite earlier ones. Any other
// token is skipped.
func Tokenize(command string) map[string]string {
	options := make(map[string]string)
	tokens := strings.Split(command, " ")

	for i := 0; i < len(tokens); i++ {
		name, ok := flagName(tokens[i])
		if !ok {
			continue
		}

		spec := lookupFlag(name)
		if spec.Arity == 0 {
			options[name] = "true"
			continue
		}
		if i+1 >= len(tokens) {
			break
		}
		if tokens[i+1] == "" {
			continue
		}
		options[name] = tokens[i+1]
		i++
	}

	return options
}

// flagName reports whether token is "-name" or "--name" where name is one
// or more ASCII letters, digits or underscores.
func flagName(token string) (string, bool) {
	if !strings.HasPrefix(token, "-") {
		return "", false
	}
	name := strings.TrimPrefix(token, "-")
	name = strings.TrimPrefix(name, "-")
	if name == "" {
		return "", false
	}
	for _, r := range name {
		if !isWordRune(r) {
			return "", false
		}
	}
	return name, true
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Parse validates argv and returns the resolved invocation.
//
// Checks run in this order, stopping at the first failure:
// help, version, -m present, -m supported, -from present, -to present,
// -output supported.
func Parse(argv []string) (*model.Invocation, error) {
	command := Normalize(argv)

	if strings.Contains(command, helpMarker) {
		return nil, ErrHelp
	}

	options := Tokenize(command)

	if _, ok := options[model.OptionVersion]; ok {
		return nil, ErrVersion
	}

	code, ok := options[model.OptionMode]
	if !ok {
		return nil, model.NewMissingArgumentError(model.OptionMode)
	}
	mode, err := model.ParseMode(code)
	if err != nil {
		return nil, err
	}

	// All three modes need every required flag. The switch is exhaustive
	// so that a future mode has to decide its own requirements here.
	switch mode {
	case model.ModeReplace, model.ModePrefixReplace, model.ModeSuffixReplace:
		if err := checkRequired(options); err != nil {
			return nil, err
		}
	default:
		return nil, model.NewUnsupportedModeError(code)
	}

	format, err := model.ParseOutputFormat(options[model.OptionOutput])
	if err != nil {
		return nil, err
	}

	_, verbose := options[model.OptionVerbose]

	return &model.Invocation{
		Command: command,
		Mode:    mode,
		From:    options[model.OptionFrom],
		To:      options[model.OptionTo],
		Options: options,
		Verbose: verbose,
		Format:  format,
	}, nil
}

// checkRequired reports the first required flag, in table order, that is
// missing from options. -m is checked earlier by Parse.
func checkRequired(options map[string]string) error {
	for _, f := range Flags {
		if !f.Required || f.Name == model.OptionMode {
			continue
		}
		if _, ok := options[f.Name]; !ok {
			return model.NewMissingArgumentError(f.Name)
		}
	}
	return nil
}

// WriteUsage prints the help text: the synopsis, the mode codes and the
// flag table.
func WriteUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "%s -m [r, pr, sr] -from [from] -to [to]\n", program)
	for _, m := range modes {
		fmt.Fprintf(w, "%s: %s\n", m.Code(), m)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	for _, f := range Flags {
		arg := ""
		if f.Arity > 0 {
			arg = " <value>"
		}
		req := ""
		if f.Required {
			req = " (required)"
		}
		fmt.Fprintf(w, "  -%-18s %s%s\n", f.Name+arg, f.Usage, req)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "All arguments are lowercased before use. Files under the current directory are renamed in place.")
}
