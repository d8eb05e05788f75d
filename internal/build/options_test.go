package build

import (
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/require"
	"github.com/vk/esbundle/internal/config"
)

func TestOptions_FullModel(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &config.Model{
		ProjectDir:  "/proj",
		EntryPoints: []string{"src/index.ts"},
		Outfile:     "dist/app.js",
		Bundle:      true,
		Format:      config.FormatESM,
		Platform:    config.PlatformBrowser,
		Target:      "es2020",
		Minify:      true,
		Sourcemap:   config.SourcemapLinked,
		External:    []string{"react"},
		Define:      map[string]string{"NODE_ENV": "production"},
	}

	// --- Act ---
	opts, err := Options(model, nil)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "/proj", opts.AbsWorkingDir)
	require.Equal(t, []string{"src/index.ts"}, opts.EntryPoints)
	require.Equal(t, "dist/app.js", opts.Outfile)
	require.True(t, opts.Bundle)
	require.Equal(t, api.FormatESModule, opts.Format)
	require.Equal(t, api.PlatformBrowser, opts.Platform)
	require.Equal(t, api.ES2020, opts.Target)
	require.Equal(t, api.SourceMapLinked, opts.Sourcemap)
	require.True(t, opts.MinifyWhitespace)
	require.True(t, opts.MinifyIdentifiers)
	require.True(t, opts.MinifySyntax)
	require.Equal(t, []string{"react"}, opts.External)
	require.Equal(t, map[string]string{"NODE_ENV": "production"}, opts.Define)
	require.True(t, opts.Write)
}

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &config.Model{EntryPoints: []string{"index.js"}}

	// --- Act ---
	opts, err := Options(model, nil)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, api.FormatDefault, opts.Format)
	require.Equal(t, api.DefaultTarget, opts.Target)
	require.Equal(t, api.SourceMapNone, opts.Sourcemap)
	require.False(t, opts.MinifyWhitespace)
}

func TestOptions_UnsupportedTarget(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &config.Model{EntryPoints: []string{"index.js"}, Target: "es3000"}

	// --- Act ---
	_, err := Options(model, nil)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), `unsupported target "es3000"`)
}

func TestFormatMapping(t *testing.T) {
	t.Parallel()

	require.Equal(t, api.FormatESModule, formatOf(config.FormatESM))
	require.Equal(t, api.FormatCommonJS, formatOf(config.FormatCJS))
	require.Equal(t, api.FormatIIFE, formatOf(config.FormatIIFE))
	require.Equal(t, api.FormatDefault, formatOf(""))
}

func TestPlatformMapping(t *testing.T) {
	t.Parallel()

	require.Equal(t, api.PlatformNode, platformOf(config.PlatformNode))
	require.Equal(t, api.PlatformNeutral, platformOf(config.PlatformNeutral))
	require.Equal(t, api.PlatformBrowser, platformOf(config.PlatformBrowser))
}
