// Package httpimport lets the bundler treat network-hosted scripts as
// ordinary importable modules. An absolute http(s):// specifier is resolved
// to a short virtual identifier during graph traversal; the body behind the
// URL is fetched lazily when the bundler asks for that identifier's content.
package httpimport

import (
	"context"
	"log/slog"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/vk/esbundle/internal/config"
	"github.com/vk/esbundle/internal/registry"
)

// Name is the plugin's registry and esbuild pipeline name.
const Name = "http-import"

// namespace marks modules owned by this plugin inside esbuild's graph.
const namespace = "http-import"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the plugin factory with the application registry. Each
// build invocation gets its own session and fetcher, so no resolution state
// or connection survives a build.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(Name, &registry.RegisteredPlugin{
		Enabled: func(model *config.Model) bool { return model.HTTPImports },
		New: func(model *config.Model) (api.Plugin, error) {
			return New(NewSession(), NewFetcher()), nil
		},
	})
}

// New wires a session and fetcher into an esbuild plugin. The OnResolve
// filter hands this plugin every absolute http(s) specifier; everything else
// falls through to the resolvers behind it in the pipeline.
func New(session *Session, fetcher ContentFetcher) api.Plugin {
	return api.Plugin{
		Name: Name,
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: remotePattern},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					id, ok := session.Resolve(args.Path)
					if !ok {
						return api.OnResolveResult{}, nil
					}
					slog.Debug("Resolved remote module.", "specifier", args.Path, "id", id)
					return api.OnResolveResult{
						Path:      id,
						Namespace: namespace,
					}, nil
				})

			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: namespace},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					rec, ok := session.Lookup(args.Path)
					if !ok {
						// Not ours; let the default loader have it.
						return api.OnLoadResult{}, nil
					}

					slog.Debug("Fetching remote module.", "id", args.Path, "url", rec.URL)
					contents, err := fetcher.Fetch(context.Background(), rec.URL)
					if err != nil {
						return api.OnLoadResult{}, err
					}
					return api.OnLoadResult{
						Contents: &contents,
						Loader:   api.LoaderJS,
					}, nil
				})
		},
	}
}
