package cli

import (
	"context"
	"flag"
	"io"
	"log/slog"

	"github.com/specialistvlad/ostepgo/internal/app"
	"github.com/specialistvlad/ostepgo/internal/counter"
	"github.com/specialistvlad/ostepgo/internal/hclconfig"
)

const memUsage = `
mem - increment a heap-allocated integer through a pointer.

Prints "(pid) p: value" once per increment. Run several copies at once
with --interval to watch each process keep its own value.

Usage:
  mem [options]

Options:
`

// MemOptions is the result of parsing mem's command line.
type MemOptions struct {
	App     *app.Config
	Counter counter.Config
}

// ParseMem processes mem's arguments. Values come from defaults, then the
// --config file, then flags given explicitly on the command line.
func ParseMem(ctx context.Context, args []string, output io.Writer) (*MemOptions, bool, error) {
	slog.Debug("CLI parser started.", "program", "mem")
	fs := newFlagSet("mem", output, memUsage)

	var common commonFlags
	common.register(fs)
	configPath := fs.String("config", "", "HCL or JSON file (or a directory of them) with a counter block.")
	iterations := fs.Int("iterations", counter.DefaultIterations, "Number of increments to print.")
	start := fs.Int("start", 0, "Initial value stored behind the pointer.")
	interval := fs.Duration("interval", 0, "Pause before each increment, e.g. 1s.")
	showAddress := fs.Bool("show-address", false, "Print the address held by the pointer before counting.")
	healthPort := fs.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")

	if shouldExit, err := parseFlags(fs, args); shouldExit || err != nil {
		return nil, shouldExit, err
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "mem takes no positional arguments, got: " + fs.Arg(0)}
	}

	appConfig, err := common.config(*healthPort)
	if err != nil {
		return nil, false, err
	}

	cfg := counter.DefaultConfig()
	if *configPath != "" {
		files, err := hclconfig.Load(ctx, *configPath)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
		}
		if err := files.Apply(&cfg); err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iterations":
			cfg.Iterations = *iterations
		case "start":
			cfg.Start = *start
		case "interval":
			cfg.Interval = *interval
		case "show-address":
			cfg.ShowAddress = *showAddress
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "program", "mem", "iterations", cfg.Iterations, "interval", cfg.Interval.String())
	return &MemOptions{App: appConfig, Counter: cfg}, false, nil
}
