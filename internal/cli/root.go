// Package cli implements the cobra-based command line for replacename.
//
// There are no subcommands. The root command disables cobra's own flag
// parsing so that the single-dash multi-letter "-key value" syntax
// (-m, -from, -to) reaches the args package untouched. This file defines
// the root command and translates errors into exit codes; run.go holds
// the rename workflow and summary.go the end-of-run output.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/replacename/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// programName is shown in usage, version output and the verbose echo.
const programName = "replacename"

// NewRootCommand creates and configures the root cobra command.
//
// The command renames files under the current working directory. All
// argument handling is delegated to args.Parse through runRename.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newRunner())
}

// newRootCommand builds the root command around a runner, so tests can
// swap the filesystem and working-directory lookup.
func newRootCommand(r *runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   programName + " -m <r|pr|sr> -from <from> -to <to>",
		Short: "Recursively rename files by replacing text in their base names",
		Long: `replacename walks the current directory and every subdirectory and renames
each file by editing its base name. The extension is always kept.

Modes:
  r   replace every occurrence of -from with -to
  pr  replace -from at the start of the name with -to
  sr  replace -from at the end of the name with -to

The whole command line is lowercased before use, -from and -to included.

Examples:
  replacename -m r -from bar -to baz
  replacename -m pr -from report_ -to draft_ -output json`,

		// Cobra's pflag parser would split "-from" into shorthand flags.
		// The raw tokens go to args.Parse instead.
		DisableFlagParsing: true,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Run formats them as a single line on stderr.
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, argv []string) error {
			return r.run(cmd.OutOrStdout(), cmd.ErrOrStderr(), argv)
		},
	}

	return rootCmd
}

// Execute runs the root command and exits the process with the
// resulting exit code. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(Run(rootCmd)))
}

// Run executes rootCmd, prints any error to its stderr and returns the
// exit code. CLIError types carry their own exit codes; other errors
// default to exit code 1.
func Run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(rootCmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
		return cliErr.Code
	}

	printError(rootCmd.ErrOrStderr(), err.Error(), nil)
	return model.ExitGeneralError
}

// printError writes a single "Error: ..." line. Domain errors contribute
// their message only, not the sentinel they wrap.
func printError(w io.Writer, message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %s\n", message, model.Detail(underlying))
		return
	}
	fmt.Fprintf(w, "Error: %s\n", message)
}

// versionString formats the build metadata for -version.
func versionString() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", programName, Version, Commit, Date)
}
