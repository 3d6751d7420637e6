// Package counter implements the mem program: one integer allocated on the
// heap and incremented through its pointer, each step printed next to the
// process id. Running several copies side by side shows that every process
// gets its own private copy of the value.
package counter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/specialistvlad/ostepgo/internal/ctxlog"
)

// DefaultIterations is the number of increments printed when not configured.
const DefaultIterations = 10

// ErrAllocation is returned if the heap integer could not be obtained.
var ErrAllocation = errors.New("failed to allocate counter")

// Config controls a counting run.
type Config struct {
	Iterations  int
	Start       int
	Interval    time.Duration
	ShowAddress bool
}

// DefaultConfig returns the configuration of the classic program: ten
// increments from zero with no pause and no address line.
func DefaultConfig() Config {
	return Config{Iterations: DefaultIterations}
}

// Validate reports configuration values the program cannot run with.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be greater than 0, got %d", c.Iterations)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", c.Interval)
	}
	return nil
}

// Program is the mem command.
type Program struct {
	cfg    Config
	getpid func() int
	alloc  func() *int
}

// New validates cfg and returns a ready Program.
func New(cfg Config) (*Program, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Program{
		cfg:    cfg,
		getpid: os.Getpid,
		alloc:  func() *int { return new(int) },
	}, nil
}

// Name implements app.Program.
func (p *Program) Name() string { return "mem" }

// Run prints "(pid) p: value" once per iteration. With a non-zero interval it
// waits before every increment and stops early when ctx is cancelled.
func (p *Program) Run(ctx context.Context, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	ptr := p.alloc()
	if ptr == nil {
		return ErrAllocation
	}
	pid := p.getpid()
	logger.Debug("Counter allocated.", "pid", pid, "address", fmt.Sprintf("%p", ptr), "iterations", p.cfg.Iterations)

	if p.cfg.ShowAddress {
		if _, err := fmt.Fprintf(out, "(%d) address pointed to by p: %p\n", pid, ptr); err != nil {
			return fmt.Errorf("failed to write address: %w", err)
		}
	}

	*ptr = p.cfg.Start
	for remaining := p.cfg.Iterations; remaining > 0; remaining-- {
		if err := wait(ctx, p.cfg.Interval); err != nil {
			logger.Debug("Counter interrupted.", "value", *ptr)
			return err
		}

		*ptr = *ptr + 1
		if _, err := fmt.Fprintf(out, "(%d) p: %d\n", pid, *ptr); err != nil {
			return fmt.Errorf("failed to write value: %w", err)
		}
	}

	logger.Debug("Counter finished.", "value", *ptr)
	return nil
}

// wait sleeps for d or until ctx is done. A zero d only checks ctx.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
