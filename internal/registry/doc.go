// Package registry provides the central "glue" for the plugin system.
//
// The Registry stores the mapping between plugin names and the factories
// that produce configured esbuild plugins for one build invocation. Plugins
// participate in esbuild's resolution pipeline in registration order, so the
// order in which core modules register determines which plugin gets first
// refusal on a module specifier.
//
// During application startup the registry is populated by each module's
// Register call and then validated; a duplicate registration is a programmer
// error and panics immediately.
package registry
