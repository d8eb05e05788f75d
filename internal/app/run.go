package app

import (
	"context"
	"fmt"

	"github.com/vk/esbundle/internal/build"
	"github.com/vk/esbundle/internal/ctxlog"
)

// Run executes one build (or a watch loop) for the merged model.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	plugins, err := a.registry.Build(a.model)
	if err != nil {
		return fmt.Errorf("failed to assemble plugin pipeline: %w", err)
	}
	a.logger.Debug("Plugin pipeline assembled.", "count", len(plugins))

	if a.model.Watch {
		return build.Watch(ctx, a.model, plugins)
	}
	if err := build.Run(ctx, a.model, plugins); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
