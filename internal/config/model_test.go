package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"esm", "cjs", "iife"} {
		format, ok := ParseFormat(valid)
		require.True(t, ok, "format %q", valid)
		require.EqualValues(t, valid, format)
	}

	_, ok := ParseFormat("umd")
	require.False(t, ok)
	_, ok = ParseFormat("")
	require.False(t, ok)
}

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"browser", "node", "neutral"} {
		platform, ok := ParsePlatform(valid)
		require.True(t, ok, "platform %q", valid)
		require.EqualValues(t, valid, platform)
	}

	_, ok := ParsePlatform("deno")
	require.False(t, ok)
}

func TestParseSourcemap(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"none", "linked", "inline", "external"} {
		mode, ok := ParseSourcemap(valid)
		require.True(t, ok, "sourcemap %q", valid)
		require.EqualValues(t, valid, mode)
	}

	_, ok := ParseSourcemap("both")
	require.False(t, ok)
}

func TestParseTarget(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"es5", "es2015", "es2020", "es2022", "esnext"} {
		target, ok := ParseTarget(valid)
		require.True(t, ok, "target %q", valid)
		require.Equal(t, valid, target)
	}

	_, ok := ParseTarget("es6")
	require.False(t, ok)
	_, ok = ParseTarget("")
	require.False(t, ok)
}
