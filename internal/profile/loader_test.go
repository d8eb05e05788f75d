package profile

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/esbundle/internal/config"
	"github.com/vk/esbundle/internal/ctxlog"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func writeProfile(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0600))
}

func TestLoader_SingleBuildBlock(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeProfile(t, dir, `
build "web" {
  entry        = ["src/index.ts"]
  outfile      = "dist/app.js"
  format       = "esm"
  minify       = true
  external     = ["react"]
  http_imports = false

  define {
    NODE_ENV = "production"
    DEBUG    = false
  }
}
`)
	model := &config.Model{ProjectDir: dir, HTTPImports: true}

	// --- Act ---
	err := NewLoader("").Load(testContext(), model)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"src/index.ts"}, model.EntryPoints)
	require.Equal(t, "dist/app.js", model.Outfile)
	require.Equal(t, config.FormatESM, model.Format)
	require.True(t, model.Minify)
	require.False(t, model.HTTPImports, "the profile can switch the http-import plugin off")
	require.Equal(t, []string{"react"}, model.External)
	require.Equal(t, map[string]string{"NODE_ENV": "production", "DEBUG": "false"}, model.Define,
		"define values are cty-evaluated and stringified")
}

func TestLoader_SelectsNamedBuild(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeProfile(t, dir, `
build "default" {
  outdir = "dist"
}

build "release" {
  outdir = "release"
  minify = true
}
`)
	model := &config.Model{ProjectDir: dir}

	// --- Act ---
	err := NewLoader("release").Load(testContext(), model)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "release", model.Outdir)
	require.True(t, model.Minify)
}

func TestLoader_MultipleBlocksFallBackToDefault(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeProfile(t, dir, `
build "default" {
  outdir = "dist"
}

build "release" {
  outdir = "release"
}
`)
	model := &config.Model{ProjectDir: dir}

	// --- Act ---
	err := NewLoader("").Load(testContext(), model)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "dist", model.Outdir, "with no name given, the 'default' block applies")
}

func TestLoader_UnknownBuildName(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeProfile(t, dir, `
build "web" {
  outdir = "dist"
}
`)
	model := &config.Model{ProjectDir: dir}

	// --- Act ---
	err := NewLoader("missing").Load(testContext(), model)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), `no build block named "missing"`)
}

func TestLoader_NoProfileFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &config.Model{ProjectDir: t.TempDir()}

	// --- Act ---
	err := NewLoader("").Load(testContext(), model)

	// --- Assert ---
	require.NoError(t, err, "a project without bundle.hcl is fine")
}

func TestLoader_NamedBuildWithoutProfileFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &config.Model{ProjectDir: t.TempDir()}

	// --- Act ---
	err := NewLoader("release").Load(testContext(), model)

	// --- Assert ---
	require.Error(t, err, "asking for a named build without a profile file is a user error")
}

func TestLoader_InvalidFormatValue(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeProfile(t, dir, `
build "web" {
  format = "umd"
}
`)
	model := &config.Model{ProjectDir: dir}

	// --- Act ---
	err := NewLoader("").Load(testContext(), model)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid format "umd"`)
}

func TestLoader_InvalidTargetValue(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeProfile(t, dir, `
build "web" {
  target = "es6"
}
`)
	model := &config.Model{ProjectDir: dir}

	// --- Act ---
	err := NewLoader("").Load(testContext(), model)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid target "es6"`)
}

func TestLoader_MalformedHCL(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeProfile(t, dir, `build "broken" {`)
	model := &config.Model{ProjectDir: dir}

	// --- Act ---
	err := NewLoader("").Load(testContext(), model)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}
