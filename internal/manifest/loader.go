package manifest

import (
	"context"
	"errors"

	"github.com/vk/esbundle/internal/config"
	"github.com/vk/esbundle/internal/ctxlog"
)

// Loader merges package.json metadata into the build model. It implements
// config.Loader.
type Loader struct {
	// externalizeDeps controls whether the manifest's runtime dependencies
	// are appended to the model's external list.
	externalizeDeps bool
}

// NewLoader creates a manifest loader.
func NewLoader(externalizeDeps bool) *Loader {
	return &Loader{externalizeDeps: externalizeDeps}
}

// Load reads the project's package.json, if any, and contributes an entry
// point and externals to the model. A project without a manifest is fine;
// the model is left untouched.
func (l *Loader) Load(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	m, err := Load(model.ProjectDir)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Debug("No package.json in project, skipping manifest defaults.", "dir", model.ProjectDir)
			return nil
		}
		return err
	}

	if len(model.EntryPoints) == 0 {
		if entry, ok := m.EntryPoint(); ok {
			model.EntryPoints = []string{entry}
			logger.Debug("Entry point taken from package.json.", "entry", entry)
		}
	}

	if l.externalizeDeps {
		externals := m.Externals()
		model.External = append(model.External, externals...)
		logger.Debug("Externalized manifest dependencies.", "count", len(externals))
	}

	return nil
}
