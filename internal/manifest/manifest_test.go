package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(contents), 0600))
}

func TestLoad_MissingManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()

	// --- Act ---
	_, err := Load(dir)

	// --- Assert ---
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeManifest(t, dir, `{"name": "broken",`)

	// --- Act ---
	_, err := Load(dir)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "package.json")
}

func TestEntryPoint_PriorityOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		manifest Manifest
		want     string
		found    bool
	}{
		{
			name:     "source wins over everything",
			manifest: Manifest{Source: "src/index.ts", Module: "dist/index.mjs", Main: "dist/index.js"},
			want:     "src/index.ts",
			found:    true,
		},
		{
			name:     "module beats browser and main",
			manifest: Manifest{Module: "dist/index.mjs", Browser: "dist/browser.js", Main: "dist/index.js"},
			want:     "dist/index.mjs",
			found:    true,
		},
		{
			name:     "browser beats main",
			manifest: Manifest{Browser: "dist/browser.js", Main: "dist/index.js"},
			want:     "dist/browser.js",
			found:    true,
		},
		{
			name:     "main as last resort",
			manifest: Manifest{Main: "dist/index.js"},
			want:     "dist/index.js",
			found:    true,
		},
		{
			name:     "nothing set",
			manifest: Manifest{Name: "bare"},
			found:    false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			entry, ok := tc.manifest.EntryPoint()
			require.Equal(t, tc.found, ok)
			require.Equal(t, tc.want, entry)
		})
	}
}

func TestExternals_SortedUnionWithoutDevDeps(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	m := Manifest{
		Dependencies:     map[string]string{"react": "^18.0.0", "lodash": "^4.17.0"},
		PeerDependencies: map[string]string{"react": "^18.0.0", "vue": "^3.0.0"},
		DevDependencies:  map[string]string{"typescript": "^5.0.0"},
	}

	// --- Act ---
	externals := m.Externals()

	// --- Assert ---
	require.Equal(t, []string{"lodash", "react", "vue"}, externals,
		"runtime and peer deps merge, dev deps stay out, order is stable")
}

func TestLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeManifest(t, dir, `{
		"name": "demo",
		"version": "1.2.3",
		"module": "src/main.mjs",
		"dependencies": {"preact": "^10.0.0"}
	}`)

	// --- Act ---
	m, err := Load(dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "demo", m.Name)
	entry, ok := m.EntryPoint()
	require.True(t, ok)
	require.Equal(t, "src/main.mjs", entry)
	require.Equal(t, []string{"preact"}, m.Externals())
}
