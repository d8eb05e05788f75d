package config

import "context"

// Loader is the interface for a source that contributes values to the build
// model. Implementations read their backing format (package.json,
// bundle.hcl) from the project directory and apply what they found onto the
// model, leaving fields they do not own untouched.
type Loader interface {
	// Load reads configuration for the project rooted at model.ProjectDir
	// and merges it into the model in place. A missing backing file is not
	// an error; loaders with nothing to contribute leave the model as-is.
	Load(ctx context.Context, model *Model) error
}
