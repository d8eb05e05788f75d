// Package build maps the config model onto esbuild and drives one-shot and
// watch-mode builds. Everything heavy (resolution, tree shaking, codegen,
// minification, TypeScript) happens inside the engine; this package only
// translates options and reports results.
package build

import (
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/vk/esbundle/internal/config"
)

// Options translates the build model into esbuild's option struct, attaching
// the given plugin pipeline in order.
func Options(model *config.Model, plugins []api.Plugin) (api.BuildOptions, error) {
	target, err := parseTarget(model.Target)
	if err != nil {
		return api.BuildOptions{}, err
	}

	opts := api.BuildOptions{
		AbsWorkingDir: model.ProjectDir,
		EntryPoints:   model.EntryPoints,
		Outfile:       model.Outfile,
		Outdir:        model.Outdir,
		Bundle:        model.Bundle,
		Write:         true,

		Format:    formatOf(model.Format),
		Platform:  platformOf(model.Platform),
		Target:    target,
		Sourcemap: sourcemapOf(model.Sourcemap),

		MinifyWhitespace:  model.Minify,
		MinifyIdentifiers: model.Minify,
		MinifySyntax:      model.Minify,

		External: model.External,
		Define:   model.Define,
		Plugins:  plugins,

		// Errors and warnings are reported through our own logger.
		LogLevel: api.LogLevelSilent,
	}
	return opts, nil
}

func formatOf(f config.Format) api.Format {
	switch f {
	case config.FormatESM:
		return api.FormatESModule
	case config.FormatCJS:
		return api.FormatCommonJS
	case config.FormatIIFE:
		return api.FormatIIFE
	}
	return api.FormatDefault
}

func platformOf(p config.Platform) api.Platform {
	switch p {
	case config.PlatformNode:
		return api.PlatformNode
	case config.PlatformNeutral:
		return api.PlatformNeutral
	}
	return api.PlatformBrowser
}

func sourcemapOf(s config.Sourcemap) api.SourceMap {
	switch s {
	case config.SourcemapLinked:
		return api.SourceMapLinked
	case config.SourcemapInline:
		return api.SourceMapInline
	case config.SourcemapExternal:
		return api.SourceMapExternal
	}
	return api.SourceMapNone
}

// parseTarget maps a target string like "es2020" or "esnext" onto esbuild's
// enum. An empty target means the engine default.
func parseTarget(s string) (api.Target, error) {
	switch s {
	case "":
		return api.DefaultTarget, nil
	case "esnext":
		return api.ESNext, nil
	case "es5":
		return api.ES5, nil
	case "es2015":
		return api.ES2015, nil
	case "es2016":
		return api.ES2016, nil
	case "es2017":
		return api.ES2017, nil
	case "es2018":
		return api.ES2018, nil
	case "es2019":
		return api.ES2019, nil
	case "es2020":
		return api.ES2020, nil
	case "es2021":
		return api.ES2021, nil
	case "es2022":
		return api.ES2022, nil
	}
	return api.DefaultTarget, fmt.Errorf("unsupported target %q", s)
}
