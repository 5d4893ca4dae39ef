package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mmr-tortoise/replacename/internal/args"
	"github.com/mmr-tortoise/replacename/internal/model"
	"github.com/mmr-tortoise/replacename/internal/renamer"
	"github.com/mmr-tortoise/replacename/internal/walker"
)

// Log messages and field names for the verbose echo.
const (
	LogMsgCommand  = "command"
	LogMsgOptions  = "resolved options"
	LogFieldLine   = "line"
	LogFieldArgMap = "options"
	LogFieldMode   = "mode"
)

// Messages wrapped into CLIError.
const (
	msgInvalidArguments = "invalid arguments (see -help)"
	msgWorkingDir       = "cannot resolve working directory"
	msgRunFailed        = "rename run aborted"
	msgWriteSummary     = "cannot write summary"
)

// runner holds the external collaborators of a run.
type runner struct {
	fs    walker.FileSystem
	getwd func() (string, error)
}

func newRunner() *runner {
	return &runner{
		fs:    walker.NewOSFileSystem(),
		getwd: os.Getwd,
	}
}

// run parses argv, renames every file under the working directory and
// prints the summary to stdout. Logs go to stderr.
func (r *runner) run(stdout, stderr io.Writer, argv []string) error {
	inv, err := args.Parse(argv)
	switch {
	case errors.Is(err, args.ErrHelp):
		args.WriteUsage(stdout, programName)
		return nil
	case errors.Is(err, args.ErrVersion):
		fmt.Fprintln(stdout, versionString())
		return nil
	case err != nil:
		return model.WrapCLIError(model.ExitGeneralError, msgInvalidArguments, err)
	}

	logger := newLogger(stderr, inv.Verbose)
	defer func() { _ = logger.Sync() }()

	logger.Debug(LogMsgCommand, zap.String(LogFieldLine, programName+" "+inv.Command))
	logger.Debug(LogMsgOptions,
		zap.Any(LogFieldArgMap, inv.Options),
		zap.Stringer(LogFieldMode, inv.Mode),
	)

	root, err := r.getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, msgWorkingDir, err)
	}

	w := walker.New(r.fs, logger)
	rn := renamer.New(r.fs, renamer.Options{Mode: inv.Mode, From: inv.From, To: inv.To}, logger)

	report, err := rn.Run(w, root)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, msgRunFailed, err)
	}

	if err := printSummary(stdout, inv.Format, report); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, msgWriteSummary, err)
	}
	return nil
}

// newLogger builds a console logger on w. Verbose runs log at debug level;
// otherwise only warnings (failed renames) and above are shown.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
