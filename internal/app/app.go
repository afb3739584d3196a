package app

import (
	"io"
	"log/slog"

	"github.com/vk/packspec/internal/config"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Resolved output goes to outW; logs go to the logger's own
// writer so that stdout stays machine-consumable.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func New(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
