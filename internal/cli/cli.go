package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/vk/esbundle/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envDefaults are the environment-variable fallbacks applied before flags.
type envDefaults struct {
	LogLevel  string `env:"ESBUNDLE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ESBUNDLE_LOG_FORMAT" envDefault:"text"`
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("esbundle", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
esbundle - A package.json aware front-end for the esbuild bundler.

Usage:
  esbundle [options] [PROJECT_DIR]

Arguments:
  PROJECT_DIR
    Path to the project root (default: current directory). Entry points,
    package.json, and bundle.hcl are resolved relative to it.

Options:
`)
		flagSet.PrintDefaults()
	}

	var entries, externals stringList
	flagSet.Var(&entries, "entry", "Entry point file, relative to the project root. Repeatable.")
	flagSet.Var(&entries, "e", "Entry point file (shorthand). Repeatable.")
	flagSet.Var(&externals, "external", "Specifier to exclude from the bundle. Repeatable.")

	dirFlag := flagSet.String("C", "", "Path to the project root.")
	outfileFlag := flagSet.String("outfile", "", "Output file. Mutually exclusive with -outdir.")
	oFlag := flagSet.String("o", "", "Output file (shorthand).")
	outdirFlag := flagSet.String("outdir", "", "Output directory. Mutually exclusive with -outfile.")
	formatFlag := flagSet.String("format", "", "Output module format. Options: 'esm', 'cjs', or 'iife'.")
	platformFlag := flagSet.String("platform", "", "Target platform. Options: 'browser', 'node', or 'neutral'.")
	targetFlag := flagSet.String("target", "", "Language target, e.g. 'es2020' or 'esnext'.")
	sourcemapFlag := flagSet.String("sourcemap", "", "Source map mode. Options: 'none', 'linked', 'inline', or 'external'.")
	minifyFlag := flagSet.Bool("minify", false, "Minify the output.")
	bundleFlag := flagSet.Bool("bundle", true, "Bundle imported modules into the output.")
	httpImportsFlag := flagSet.Bool("http-imports", true, "Resolve absolute http(s):// imports by fetching them.")
	externalizeFlag := flagSet.Bool("externalize-deps", false, "Mark all package.json dependencies as external.")
	profileFlag := flagSet.String("profile", "", "Named build block to use from bundle.hcl.")
	watchFlag := flagSet.Bool("watch", false, "Rebuild whenever input files change.")
	wFlag := flagSet.Bool("w", false, "Rebuild on change (shorthand).")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Pointer booleans stay nil unless the flag appeared, so profile and
	// manifest values keep their say when the user was silent.
	var minify, bundle, httpImports *bool
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "minify":
			minify = minifyFlag
		case "bundle":
			bundle = bundleFlag
		case "http-imports":
			httpImports = httpImportsFlag
		}
	})

	dir := "."
	if *dirFlag != "" {
		dir = *dirFlag
	} else if flagSet.NArg() > 0 {
		dir = flagSet.Arg(0)
	}
	slog.Debug("Project directory determined.", "dir", dir)

	outfile := *outfileFlag
	if outfile == "" {
		outfile = *oFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProjectDir:      dir,
		EntryPoints:     entries,
		Outfile:         outfile,
		Outdir:          *outdirFlag,
		Format:          strings.ToLower(*formatFlag),
		Platform:        strings.ToLower(*platformFlag),
		Target:          strings.ToLower(*targetFlag),
		Sourcemap:       strings.ToLower(*sourcemapFlag),
		External:        externals,
		Minify:          minify,
		Bundle:          bundle,
		HTTPImports:     httpImports,
		ExternalizeDeps: *externalizeFlag,
		ProfileName:     *profileFlag,
		Watch:           *watchFlag || *wFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
