// Package argtest implements the argtest program: it reads the first
// command-line argument, converts it to an integer and prints it.
package argtest

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/ostepgo/internal/atoi"
	"github.com/specialistvlad/ostepgo/internal/ctxlog"
)

// ErrNoArgument is returned when no positional argument was supplied. Its
// text is the message shown to the user.
var ErrNoArgument = errors.New("You did not feed me arguments, I will die now :( ...")

// Config is the parsed command line of argtest.
type Config struct {
	Args   []string // positional arguments; only the first is used
	Strict bool     // reject malformed numbers instead of reading them as 0
}

// Program is the argtest command.
type Program struct {
	cfg Config
}

// New returns a Program for cfg.
func New(cfg Config) *Program {
	return &Program{cfg: cfg}
}

// Name implements app.Program.
func (p *Program) Name() string { return "argtest" }

// Run prints "Test: <n>" for the first argument.
func (p *Program) Run(ctx context.Context, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	if len(p.cfg.Args) == 0 {
		return ErrNoArgument
	}
	raw := p.cfg.Args[0]
	if extra := p.cfg.Args[1:]; len(extra) > 0 {
		logger.Debug("Ignoring extra arguments.", "extra", extra)
	}

	var n int
	if p.cfg.Strict {
		var err error
		if n, err = atoi.Strict(raw); err != nil {
			return err
		}
	} else {
		n = atoi.Lenient(raw)
	}
	logger.Debug("Argument converted.", "raw", raw, "value", n, "strict", p.cfg.Strict)

	if _, err := fmt.Fprintf(out, "Test: %d\n", n); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
