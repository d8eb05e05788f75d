package profile

import "github.com/hashicorp/hcl/v2"

// defineBlock holds the raw body of a 'define' block. Attribute names and
// values are extracted during translation.
type defineBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// buildBlock represents a named `build` block in a bundle.hcl file.
type buildBlock struct {
	Name string `hcl:"name,label"`

	Entry     []string `hcl:"entry,optional"`
	Outfile   string   `hcl:"outfile,optional"`
	Outdir    string   `hcl:"outdir,optional"`
	Format    string   `hcl:"format,optional"`
	Platform  string   `hcl:"platform,optional"`
	Target    string   `hcl:"target,optional"`
	Minify    *bool    `hcl:"minify,optional"`
	Sourcemap string   `hcl:"sourcemap,optional"`
	Bundle    *bool    `hcl:"bundle,optional"`
	External  []string `hcl:"external,optional"`

	HTTPImports *bool `hcl:"http_imports,optional"`

	Define *defineBlock `hcl:"define,block"`
}

// profileFile represents the top-level structure of a bundle.hcl file.
type profileFile struct {
	Builds []*buildBlock `hcl:"build,block"`
}
