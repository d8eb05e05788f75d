package build

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/vk/esbundle/internal/config"
	"github.com/vk/esbundle/internal/ctxlog"
)

// Run performs a one-shot build and returns an error aggregating every
// message the engine reported.
func Run(ctx context.Context, model *config.Model, plugins []api.Plugin) error {
	logger := ctxlog.FromContext(ctx)

	opts, err := Options(model, plugins)
	if err != nil {
		return err
	}

	logger.Debug("Starting build.", "entry_points", model.EntryPoints, "plugins", len(plugins))
	result := api.Build(opts)

	for _, msg := range result.Warnings {
		logger.Warn(messageText(msg))
	}
	if len(result.Errors) > 0 {
		return resultError(result.Errors)
	}

	logger.Info("Build finished.", "outputs", len(result.OutputFiles), "warnings", len(result.Warnings))
	return nil
}

// Watch starts a watch-mode build that rebuilds on file changes until the
// context is cancelled. The initial build's errors are returned immediately;
// rebuild outcomes are logged.
func Watch(ctx context.Context, model *config.Model, plugins []api.Plugin) error {
	logger := ctxlog.FromContext(ctx)

	opts, err := Options(model, plugins)
	if err != nil {
		return err
	}
	opts.Watch = &api.WatchMode{
		OnRebuild: func(result api.BuildResult) {
			if len(result.Errors) > 0 {
				logger.Error("Rebuild failed.", "errors", len(result.Errors))
				for _, msg := range result.Errors {
					logger.Error(messageText(msg))
				}
				return
			}
			logger.Info("Rebuild finished.", "warnings", len(result.Warnings))
		},
	}

	logger.Debug("Starting watch build.", "entry_points", model.EntryPoints)
	result := api.Build(opts)
	if len(result.Errors) > 0 {
		// The engine starts watching even when the initial build fails.
		if result.Stop != nil {
			result.Stop()
		}
		return resultError(result.Errors)
	}

	logger.Info("Watching for changes. Press Ctrl+C to stop.")
	<-ctx.Done()
	if result.Stop != nil {
		result.Stop()
	}
	logger.Info("Watch stopped.")
	return nil
}

// resultError flattens the engine's error messages into a single Go error
// with file:line:col positions where available.
func resultError(msgs []api.Message) error {
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		lines = append(lines, messageText(msg))
	}
	return fmt.Errorf("build failed:\n%s", strings.Join(lines, "\n"))
}

func messageText(msg api.Message) string {
	if msg.Location != nil {
		return fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text)
	}
	return msg.Text
}
