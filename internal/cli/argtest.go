package cli

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/ostepgo/internal/app"
	"github.com/specialistvlad/ostepgo/internal/argtest"
)

const argtestUsage = `
argtest - convert the first argument to an integer and print it.

Input that is not a number reads as 0 unless --strict is given.

Usage:
  argtest [options] NUMBER

Options:
`

// ArgtestOptions is the result of parsing argtest's command line.
type ArgtestOptions struct {
	App     *app.Config
	Argtest argtest.Config
}

// ParseArgtest processes argtest's arguments. A missing NUMBER is not a parse
// error: the program itself reports it so the exit status matches the
// classic behavior.
func ParseArgtest(args []string, output io.Writer) (*ArgtestOptions, bool, error) {
	slog.Debug("CLI parser started.", "program", "argtest")
	fs := newFlagSet("argtest", output, argtestUsage)

	var common commonFlags
	common.register(fs)
	strict := fs.Bool("strict", false, "Reject input that is not a whole number instead of reading it as 0.")

	if shouldExit, err := parseFlags(fs, protectPositional(fs, args)); shouldExit || err != nil {
		return nil, shouldExit, err
	}

	appConfig, err := common.config(0)
	if err != nil {
		return nil, false, err
	}

	opts := &ArgtestOptions{
		App: appConfig,
		Argtest: argtest.Config{
			Args:   fs.Args(),
			Strict: *strict,
		},
	}
	slog.Debug("CLI parser finished successfully.", "program", "argtest", "args", len(opts.Argtest.Args))
	return opts, false, nil
}
