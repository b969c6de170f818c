package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/wavegridgo/internal/config"
	"github.com/vk/wavegridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and a
// validated wave model.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var model *config.Model
	if appConfig.Direct {
		// Direct runs carry their dimensions on the config itself; build a
		// single-wave model so the rest of the app sees one shape.
		model = &config.Model{Waves: []*config.Wave{{
			Name:   "cli",
			Rows:   appConfig.Rows,
			Cols:   appConfig.Cols,
			Rounds: appConfig.Rounds,
		}}}
		logger.Debug("Wave model built from direct dimensions.")
	} else {
		loaded, err := loader.Load(ctx, appConfig.ScenarioPath)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		model = loaded
		logger.Debug("Configuration loaded and translated into unified model.")
	}

	if err := model.Validate(); err != nil {
		panic(err)
	}
	logger.Debug("Wave model validation passed.", "waves", len(model.Waves))

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
	}
}

// Model returns the application's wave model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
