package app

import (
	"context"
	"fmt"

	"github.com/vk/wavegridgo/internal/ctxlog"
	"github.com/vk/wavegridgo/internal/wavefront"
)

// Run executes every configured wave in order, writing each round's result
// line to the application's output writer.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.HealthcheckPort > 0 {
		a.startHealthcheckServer(appConfig.HealthcheckPort)
	}

	if len(a.model.Waves) == 0 {
		a.logger.Warn("No waves found in configuration, execution not required.")
		return nil
	}

	a.logger.Info("🚀 Starting wavefront execution...", "waves", len(a.model.Waves))
	for _, wave := range a.model.Waves {
		// Waves run sequentially; a cancelled context stops the run at the
		// next wave boundary.
		if err := ctx.Err(); err != nil {
			return err
		}

		runner, err := wavefront.New(wavefront.Spec{
			Name:   wave.Name,
			Rows:   wave.Rows,
			Cols:   wave.Cols,
			Rounds: wave.Rounds,
			Expect: wave.Expect,
		}, wavefront.WithOutput(a.outW))
		if err != nil {
			return fmt.Errorf("wave %q: %w", wave.Name, err)
		}

		if _, err := runner.Run(ctx); err != nil {
			return fmt.Errorf("wave %q: %w", wave.Name, err)
		}
	}
	a.logger.Info("🏁 Execution finished.", "waves", len(a.model.Waves))

	a.logger.Debug("App.Run method finished.")
	return nil
}
