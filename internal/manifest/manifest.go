// Package manifest reads project metadata from package.json and derives
// build defaults from it: the entry point and the set of dependency names
// that can be externalized.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Manifest is the subset of package.json this tool cares about.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	// Entry point fields, in descending priority.
	Source  string `json:"source"`
	Module  string `json:"module"`
	Browser string `json:"browser"`
	Main    string `json:"main"`

	Dependencies     map[string]string `json:"dependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
}

// ErrNotFound is returned by Load when the directory has no package.json.
var ErrNotFound = errors.New("package.json not found")

// Load reads and decodes the package.json in dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &m, nil
}

// EntryPoint returns the manifest's preferred entry file, probing the
// source, module, browser, and main fields in that order. It returns false
// when none is set.
func (m *Manifest) EntryPoint() (string, bool) {
	for _, candidate := range []string{m.Source, m.Module, m.Browser, m.Main} {
		if candidate != "" {
			return candidate, true
		}
	}
	return "", false
}

// Externals returns the sorted union of dependency and peerDependency names.
// devDependencies are excluded: they are build-time tooling, not runtime
// imports.
func (m *Manifest) Externals() []string {
	seen := make(map[string]bool, len(m.Dependencies)+len(m.PeerDependencies))
	for name := range m.Dependencies {
		seen[name] = true
	}
	for name := range m.PeerDependencies {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
