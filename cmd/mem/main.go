// Command mem allocates an integer on the heap and increments it through a
// pointer, printing the process id with every value.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/ostepgo/internal/app"
	"github.com/specialistvlad/ostepgo/internal/cli"
	"github.com/specialistvlad/ostepgo/internal/counter"
)

func main() {
	// Use a minimal logger until the app configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run holds the program logic so tests can drive it with buffers.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.ParseMem(ctx, args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	prog, err := counter.New(opts.Counter)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error(), Err: err}
	}

	memApp := app.NewApp(outW, errW, opts.App)
	if err := memApp.Run(ctx, prog); err != nil {
		if errors.Is(err, context.Canceled) {
			return &cli.ExitError{Code: cli.ExitInterrupted, Message: "interrupted", Err: err}
		}
		return err
	}
	return nil
}
