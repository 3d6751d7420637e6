// Command argtest converts its first argument to an integer and prints it.
// With no argument it complains and exits with status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/ostepgo/internal/app"
	"github.com/specialistvlad/ostepgo/internal/argtest"
	"github.com/specialistvlad/ostepgo/internal/atoi"
	"github.com/specialistvlad/ostepgo/internal/cli"
)

func main() {
	// Use a minimal logger until the app configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run holds the program logic so tests can drive it with buffers.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.ParseArgtest(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	argApp := app.NewApp(outW, errW, opts.App)
	err = argApp.Run(ctx, argtest.New(opts.Argtest))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, argtest.ErrNoArgument):
		// The complaint is regular program output; main has nothing left to print.
		fmt.Fprintln(outW, argtest.ErrNoArgument.Error())
		return &cli.ExitError{Code: cli.ExitFailure, Err: err}
	case errors.Is(err, atoi.ErrInvalidNumber):
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error(), Err: err}
	default:
		return err
	}
}
