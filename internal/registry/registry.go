package registry

import (
	"fmt"
	"log/slog"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/vk/esbundle/internal/config"
)

// Module is the interface that all core modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// RegisteredPlugin holds the factory for a single esbuild plugin.
type RegisteredPlugin struct {
	// Enabled reports whether the plugin participates in the given build.
	// A nil Enabled means always on.
	Enabled func(model *config.Model) bool

	// New produces a fresh plugin instance for one build invocation. Any
	// per-build state (resolution tables, clients) is created here so that
	// nothing leaks between invocations.
	New func(model *config.Model) (api.Plugin, error)
}

// Registry holds all registered plugin factories for a single application
// instance, in registration order.
type Registry struct {
	plugins map[string]*RegisteredPlugin
	order   []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		plugins: make(map[string]*RegisteredPlugin),
	}
}

// RegisterPlugin registers a plugin factory under a unique name.
func (r *Registry) RegisterPlugin(name string, p *RegisteredPlugin) {
	if _, exists := r.plugins[name]; exists {
		panic(fmt.Sprintf("plugin with name '%s' already registered", name))
	}
	if p.New == nil {
		panic(fmt.Sprintf("plugin '%s' registered without a factory", name))
	}
	slog.Debug("Registering plugin.", "name", name)
	r.plugins[name] = p
	r.order = append(r.order, name)
}

// Names returns the registered plugin names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Build instantiates every enabled plugin for the given build model, in
// registration order.
func (r *Registry) Build(model *config.Model) ([]api.Plugin, error) {
	var plugins []api.Plugin
	for _, name := range r.order {
		registered := r.plugins[name]
		if registered.Enabled != nil && !registered.Enabled(model) {
			slog.Debug("Plugin disabled for this build.", "name", name)
			continue
		}
		plugin, err := registered.New(model)
		if err != nil {
			return nil, fmt.Errorf("failed to construct plugin '%s': %w", name, err)
		}
		plugins = append(plugins, plugin)
	}
	return plugins, nil
}
