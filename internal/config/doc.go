// Package config defines the format-agnostic build configuration model for
// the application, along with the Loader interface implemented by the
// concrete sources (package.json manifest, bundle.hcl profile) that
// populate it.
//
// The config.Model is the single source of truth for the build and registry
// packages. Values merge in a fixed precedence: manifest-derived defaults,
// then profile values, then command-line flags.
package config
