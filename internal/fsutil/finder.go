// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// entryCandidates lists the conventional entry files probed by
// FindDefaultEntry, in priority order.
var entryCandidates = []string{
	"src/index.ts",
	"src/index.tsx",
	"src/index.jsx",
	"src/index.mjs",
	"src/index.js",
	"index.ts",
	"index.tsx",
	"index.jsx",
	"index.mjs",
	"index.js",
}

// FindDefaultEntry probes a project directory for a conventional entry point
// and returns its path relative to root. It returns false when none of the
// candidates exist.
func FindDefaultEntry(root string) (string, bool) {
	for _, candidate := range entryCandidates {
		if _, err := os.Stat(filepath.Join(root, candidate)); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// FindFilesByExtension recursively searches the given root path for all files
// ending with the specified extension. It returns a slice of their full paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "node_modules" {
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
