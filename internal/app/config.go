package app

import (
	"errors"
	"fmt"

	"github.com/vk/esbundle/internal/config"
)

// Config holds everything the CLI hands to an App instance. Pointer booleans
// are tri-state: nil means the flag was not given and lower-precedence
// sources (profile, manifest) keep their say.
type Config struct {
	ProjectDir string

	EntryPoints []string
	Outfile     string
	Outdir      string
	Format      string
	Platform    string
	Target      string
	Sourcemap   string
	External    []string

	Minify      *bool
	Bundle      *bool
	HTTPImports *bool

	// ExternalizeDeps marks every package.json dependency as external.
	ExternalizeDeps bool

	// ProfileName selects a build block from bundle.hcl.
	ProfileName string

	Watch bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config assembled from flags.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectDir == "" {
		return nil, errors.New("ProjectDir is a required configuration field and cannot be empty")
	}
	if cfg.Outfile != "" && cfg.Outdir != "" {
		return nil, errors.New("outfile and outdir are mutually exclusive")
	}
	if cfg.Format != "" {
		if _, ok := config.ParseFormat(cfg.Format); !ok {
			return nil, fmt.Errorf("invalid format %q: must be 'esm', 'cjs', or 'iife'", cfg.Format)
		}
	}
	if cfg.Platform != "" {
		if _, ok := config.ParsePlatform(cfg.Platform); !ok {
			return nil, fmt.Errorf("invalid platform %q: must be 'browser', 'node', or 'neutral'", cfg.Platform)
		}
	}
	if cfg.Sourcemap != "" {
		if _, ok := config.ParseSourcemap(cfg.Sourcemap); !ok {
			return nil, fmt.Errorf("invalid sourcemap mode %q: must be 'none', 'linked', 'inline', or 'external'", cfg.Sourcemap)
		}
	}
	if cfg.Target != "" {
		if _, ok := config.ParseTarget(cfg.Target); !ok {
			return nil, fmt.Errorf("invalid target %q: must be 'es5', 'es2015' through 'es2022', or 'esnext'", cfg.Target)
		}
	}

	return &cfg, nil
}
