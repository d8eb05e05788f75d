// Package profile loads declarative build profiles from bundle.hcl files. A
// profile file declares one or more named `build` blocks; the selected block
// contributes output, format, and plugin settings to the build model,
// overriding manifest-derived defaults.
package profile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/esbundle/internal/config"
	"github.com/vk/esbundle/internal/ctxlog"
	"github.com/vk/esbundle/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// FileName is the conventional profile file name probed in the project root.
const FileName = "bundle.hcl"

// DefaultBuild is the block selected when the user names none.
const DefaultBuild = "default"

// Loader merges a bundle.hcl build block into the build model. It implements
// config.Loader.
type Loader struct {
	// buildName selects which `build` block applies. Empty means
	// DefaultBuild, or the only block when exactly one is declared.
	buildName string
}

// NewLoader creates a profile loader selecting the named build block.
func NewLoader(buildName string) *Loader {
	return &Loader{buildName: buildName}
}

// Load parses the project's bundle.hcl, if any, and applies the selected
// build block onto the model. A project without a profile is fine unless a
// specific build name was requested.
func (l *Loader) Load(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	path := filepath.Join(model.ProjectDir, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if l.buildName != "" {
				return fmt.Errorf("build %q requested but %s has no %s", l.buildName, model.ProjectDir, FileName)
			}
			// A stray .hcl file is usually a misnamed profile; tell the user.
			if strays, findErr := fsutil.FindFilesByExtension(model.ProjectDir, ".hcl"); findErr == nil && len(strays) > 0 {
				logger.Warn("Found .hcl files but no profile; profiles must be named bundle.hcl.", "files", strays)
			}
			logger.Debug("No build profile in project.", "dir", model.ProjectDir)
			return nil
		}
		return err
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var parsed profileFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	block, err := l.selectBuild(parsed.Builds)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Build profile selected.", "name", block.Name)

	return applyBlock(block, model)
}

// selectBuild picks the build block matching the loader's name. With no name
// configured, a single block is used as-is and multiple blocks require one
// named "default".
func (l *Loader) selectBuild(blocks []*buildBlock) (*buildBlock, error) {
	if len(blocks) == 0 {
		return nil, errors.New("no build blocks declared")
	}

	name := l.buildName
	if name == "" {
		if len(blocks) == 1 {
			return blocks[0], nil
		}
		name = DefaultBuild
	}

	for _, b := range blocks {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("no build block named %q", name)
}

// applyBlock copies the block's set fields onto the model. Unset fields
// (zero values, nil bool pointers) leave the model untouched.
func applyBlock(b *buildBlock, model *config.Model) error {
	if len(b.Entry) > 0 {
		model.EntryPoints = b.Entry
	}
	if b.Outfile != "" {
		model.Outfile = b.Outfile
	}
	if b.Outdir != "" {
		model.Outdir = b.Outdir
	}
	if b.Format != "" {
		format, ok := config.ParseFormat(b.Format)
		if !ok {
			return fmt.Errorf("build %q: invalid format %q", b.Name, b.Format)
		}
		model.Format = format
	}
	if b.Platform != "" {
		platform, ok := config.ParsePlatform(b.Platform)
		if !ok {
			return fmt.Errorf("build %q: invalid platform %q", b.Name, b.Platform)
		}
		model.Platform = platform
	}
	if b.Target != "" {
		target, ok := config.ParseTarget(b.Target)
		if !ok {
			return fmt.Errorf("build %q: invalid target %q", b.Name, b.Target)
		}
		model.Target = target
	}
	if b.Sourcemap != "" {
		mode, ok := config.ParseSourcemap(b.Sourcemap)
		if !ok {
			return fmt.Errorf("build %q: invalid sourcemap mode %q", b.Name, b.Sourcemap)
		}
		model.Sourcemap = mode
	}
	if b.Minify != nil {
		model.Minify = *b.Minify
	}
	if b.Bundle != nil {
		model.Bundle = *b.Bundle
	}
	if b.HTTPImports != nil {
		model.HTTPImports = *b.HTTPImports
	}
	if len(b.External) > 0 {
		model.External = append(model.External, b.External...)
	}

	if b.Define != nil {
		defines, err := decodeDefines(b.Define)
		if err != nil {
			return fmt.Errorf("build %q: %w", b.Name, err)
		}
		if model.Define == nil {
			model.Define = make(map[string]string, len(defines))
		}
		for k, v := range defines {
			model.Define[k] = v
		}
	}

	return nil
}

// decodeDefines evaluates each attribute of a define block to a string.
// Non-string primitives (numbers, bools) are converted; structural values
// are rejected.
func decodeDefines(block *defineBlock) (map[string]string, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid define block: %w", diags)
	}

	defines := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("define %q: %w", name, diags)
		}
		strVal, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("define %q: value is not convertible to string: %w", name, err)
		}
		if strVal.IsNull() {
			return nil, fmt.Errorf("define %q: value must not be null", name)
		}
		defines[name] = strVal.AsString()
	}
	return defines, nil
}
