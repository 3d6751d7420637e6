package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/ostepgo/internal/ctxlog"
)

// Program is a single runnable command. Run writes its user-facing output to
// out; diagnostics go through the logger carried by ctx.
type Program interface {
	Name() string
	Run(ctx context.Context, out io.Writer) error
}

// App wires one Program to its output stream, logger and optional health
// check server.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	ctx        context.Context
	httpServer *http.Server
}

// NewApp returns an App that writes program output to outW and logs to logW.
// The logger is private to the App instance.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		ctx:    ctxlog.WithLogger(context.Background(), logger),
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
