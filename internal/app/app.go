package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/vk/esbundle/internal/config"
	"github.com/vk/esbundle/internal/ctxlog"
	"github.com/vk/esbundle/internal/fsutil"
	"github.com/vk/esbundle/internal/manifest"
	"github.com/vk/esbundle/internal/profile"
	"github.com/vk/esbundle/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, a merged
// build model, and a populated plugin registry.
//
// Configuration sources merge in a fixed precedence: manifest-derived
// defaults, then the bundle.hcl profile, then command-line flags. A failure
// to load either source is a fatal startup error and panics; the entrypoint
// recovers it into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loaders []config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	projectDir, err := filepath.Abs(appConfig.ProjectDir)
	if err != nil {
		panic(fmt.Errorf("failed to resolve project directory: %w", err))
	}

	model := &config.Model{
		ProjectDir:  projectDir,
		Bundle:      true,
		HTTPImports: true,
		Platform:    config.PlatformBrowser,
	}

	if loaders == nil {
		loaders = defaultLoaders(appConfig)
	}
	for _, loader := range loaders {
		if err := loader.Load(ctx, model); err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
	}
	applyFlags(model, appConfig)
	fillDefaults(model)
	logger.Debug("Configuration merged into unified build model.",
		"entry_points", model.EntryPoints, "watch", model.Watch)

	if err := validateModel(model); err != nil {
		panic(err)
	}

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All plugin modules registered.", "count", len(modules), "names", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
	}
}

// defaultLoaders assembles the production configuration sources in merge
// order: package.json first, bundle.hcl second.
func defaultLoaders(appConfig *Config) []config.Loader {
	return []config.Loader{
		manifest.NewLoader(appConfig.ExternalizeDeps),
		profile.NewLoader(appConfig.ProfileName),
	}
}

// applyFlags lays command-line values over the loaded model. Only flags the
// user actually provided (non-zero strings and slices, non-nil booleans)
// override.
func applyFlags(model *config.Model, cfg *Config) {
	if len(cfg.EntryPoints) > 0 {
		model.EntryPoints = cfg.EntryPoints
	}
	if cfg.Outfile != "" {
		model.Outfile = cfg.Outfile
		model.Outdir = ""
	}
	if cfg.Outdir != "" {
		model.Outdir = cfg.Outdir
		model.Outfile = ""
	}
	if cfg.Format != "" {
		// Validated by NewConfig.
		format, _ := config.ParseFormat(cfg.Format)
		model.Format = format
	}
	if cfg.Platform != "" {
		platform, _ := config.ParsePlatform(cfg.Platform)
		model.Platform = platform
	}
	if cfg.Target != "" {
		model.Target = cfg.Target
	}
	if cfg.Sourcemap != "" {
		mode, _ := config.ParseSourcemap(cfg.Sourcemap)
		model.Sourcemap = mode
	}
	if len(cfg.External) > 0 {
		model.External = append(model.External, cfg.External...)
	}
	if cfg.Minify != nil {
		model.Minify = *cfg.Minify
	}
	if cfg.Bundle != nil {
		model.Bundle = *cfg.Bundle
	}
	if cfg.HTTPImports != nil {
		model.HTTPImports = *cfg.HTTPImports
	}
	model.Watch = cfg.Watch
}

// fillDefaults supplies whatever neither flags nor configuration decided.
func fillDefaults(model *config.Model) {
	if len(model.EntryPoints) == 0 {
		if entry, ok := fsutil.FindDefaultEntry(model.ProjectDir); ok {
			model.EntryPoints = []string{entry}
		}
	}
	if model.Outfile == "" && model.Outdir == "" {
		model.Outdir = "dist"
	}
}

// validateModel rejects models no build could run with.
func validateModel(model *config.Model) error {
	if len(model.EntryPoints) == 0 {
		return errors.New("no entry point: pass -entry, set one in package.json or bundle.hcl, or add src/index.ts")
	}
	if model.Outfile != "" && model.Outdir != "" {
		return errors.New("outfile and outdir are mutually exclusive")
	}
	return nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the merged build model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
