package cli

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/ostepgo/internal/app"
)

// Exit codes shared by the programs.
const (
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// ExitError is an error that carries the process exit code to use. An empty
// Message means the program already told the user what went wrong.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// commonFlags are registered on every program's flag set.
type commonFlags struct {
	logFormat string
	logLevel  string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.logFormat, "log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	fs.StringVar(&c.logLevel, "log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
}

func (c *commonFlags) config(healthcheckPort int) (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		LogFormat:       c.logFormat,
		LogLevel:        c.logLevel,
		HealthcheckPort: healthcheckPort,
	})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// newFlagSet returns a flag set that reports problems instead of exiting.
func newFlagSet(name string, output io.Writer, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		io.WriteString(output, usage)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags runs fs.Parse and maps its outcome: help requests become
// shouldExit, everything else an ExitError with the usage code.
func parseFlags(fs *flag.FlagSet, args []string) (shouldExit bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}
	slog.Debug("Arguments parsed successfully.", "program", fs.Name())
	return false, nil
}

// protectPositional inserts "--" before the first dash-prefixed argument
// that does not name a flag registered on fs, so input such as "-5" or "-x"
// reaches the program as a positional argument instead of failing to parse.
// Values of non-boolean flags given as a separate argument are skipped.
func protectPositional(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || len(a) < 2 || a[0] != '-' {
			// The flag package stops at these, so everything after is positional already.
			return args
		}

		name := strings.TrimPrefix(a[1:], "-")
		name, _, hasValue := strings.Cut(name, "=")
		f := fs.Lookup(name)
		if f == nil && name != "h" && name != "help" {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		if f != nil && !hasValue && !isBoolFlag(f) {
			i++
		}
	}
	return args
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}
