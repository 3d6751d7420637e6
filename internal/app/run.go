package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/ostepgo/internal/ctxlog"
)

// Run executes prog with the App's logger attached to ctx. The health check
// server, if enabled, lives exactly as long as the program.
func (a *App) Run(ctx context.Context, prog Program) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run started.", "program", prog.Name())

	if err := a.startHealthcheckServer(); err != nil {
		return err
	}
	defer func() {
		if cerr := a.closeHealthcheckServer(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := prog.Run(ctx, a.outW); err != nil {
		a.logger.Debug("Program returned an error.", "program", prog.Name(), "error", err)
		return fmt.Errorf("%s: %w", prog.Name(), err)
	}

	a.logger.Debug("App.Run finished.", "program", prog.Name())
	return nil
}
