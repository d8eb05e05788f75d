package config

// Format names the module syntax of the bundled output.
type Format string

const (
	FormatESM  Format = "esm"
	FormatCJS  Format = "cjs"
	FormatIIFE Format = "iife"
)

// Platform names the runtime environment the output targets.
type Platform string

const (
	PlatformBrowser Platform = "browser"
	PlatformNode    Platform = "node"
	PlatformNeutral Platform = "neutral"
)

// Sourcemap names the source map emission mode.
type Sourcemap string

const (
	SourcemapNone     Sourcemap = "none"
	SourcemapLinked   Sourcemap = "linked"
	SourcemapInline   Sourcemap = "inline"
	SourcemapExternal Sourcemap = "external"
)

// Model is the unified, format-agnostic representation of one build
// invocation. It is assembled by the app package from the project manifest,
// an optional build profile, and command-line flags.
type Model struct {
	// ProjectDir is the absolute path of the project root. All relative
	// paths in the model are resolved against it.
	ProjectDir string

	EntryPoints []string
	Outfile     string
	Outdir      string

	Format    Format
	Platform  Platform
	Target    string
	Minify    bool
	Sourcemap Sourcemap
	Bundle    bool

	// External lists specifiers excluded from the bundle.
	External []string

	// Define maps identifiers to compile-time constant replacements.
	Define map[string]string

	// HTTPImports enables the remote-module resolver plugin.
	HTTPImports bool

	Watch bool
}

// ParseFormat validates a format string from a flag or profile.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatESM, FormatCJS, FormatIIFE:
		return Format(s), true
	}
	return "", false
}

// ParsePlatform validates a platform string from a flag or profile.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(s) {
	case PlatformBrowser, PlatformNode, PlatformNeutral:
		return Platform(s), true
	}
	return "", false
}

// ParseSourcemap validates a sourcemap mode string from a flag or profile.
func ParseSourcemap(s string) (Sourcemap, bool) {
	switch Sourcemap(s) {
	case SourcemapNone, SourcemapLinked, SourcemapInline, SourcemapExternal:
		return Sourcemap(s), true
	}
	return "", false
}

// ParseTarget validates a language-target string from a flag or profile.
// The accepted names mirror the engine's target enum.
func ParseTarget(s string) (string, bool) {
	switch s {
	case "es5", "es2015", "es2016", "es2017", "es2018", "es2019",
		"es2020", "es2021", "es2022", "esnext":
		return s, true
	}
	return "", false
}
