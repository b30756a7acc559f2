package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pathutils "github.com/gemini-testing/path-utils/internal"
	"github.com/gemini-testing/path-utils/internal/effect"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	var stdout, stderr strings.Builder
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExpandCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib", "vendor"), 0755))
	for _, name := range []string{"lib/a.js", "lib/b.txt", "lib/vendor/c.js"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	t.Run("formats", func(t *testing.T) {
		out, _, err := execute(t, "expand", "--root", dir, "--format", ".js", "lib")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "lib/a.js"),
			filepath.Join(dir, "lib/vendor/c.js"),
		}, strings.Fields(out))
	})

	t.Run("ignore and null", func(t *testing.T) {
		out, _, err := execute(t, "expand", "--root", dir, "--ignore", "lib/vendor/**", "-0", "lib/**/*.js")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "lib/a.js")+"\x00", out)
	})

	t.Run("strict", func(t *testing.T) {
		_, _, err := execute(t, "expand", "--root", dir, "missing/*.js")
		require.ErrorIs(t, err, pathutils.ErrNoMatch)
	})

	t.Run("lenient", func(t *testing.T) {
		out, _, err := execute(t, "expand", "--root", dir, "--policy", "lenient", "missing/*.js")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("invalid policy", func(t *testing.T) {
		_, _, err := execute(t, "expand", "--root", dir, "--policy", "sometimes", "lib")
		assert.ErrorContains(t, err, "does not belong to MatchPolicy values")
	})

	t.Run("config", func(t *testing.T) {
		fp := filepath.Join(dir, "paths.yaml")
		require.NoError(t, os.WriteFile(fp, []byte("formats: [.txt]\n"), 0644))
		out, _, err := execute(t, "expand", "--config", fp, "lib")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "lib/b.txt")+"\n", out)
	})

	t.Run("terminal summary", func(t *testing.T) {
		defer effect.Swap(&isTerminal, func(io.Writer) bool { return true })()
		_, errOut, err := execute(t, "expand", "--root", dir, "lib/*.txt")
		require.NoError(t, err)
		assert.Equal(t, "Found 1 file(s).\n", errOut)
	})
}

func TestPolicyCompletion(t *testing.T) {
	out, _, err := execute(t, cobra.ShellCompRequestCmd, "expand", "--policy", "")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, pathutils.MatchPolicyStrings(), lines[:len(lines)-1])
}

func TestClassifyCommand(t *testing.T) {
	out, _, err := execute(t, "classify", "a/*", "b.js")
	require.NoError(t, err)
	assert.Equal(t, "mask\ta/*\npath\tb.js\n", out)

	_, _, err = execute(t, "classify", "--all", "a/*", "b/**")
	require.NoError(t, err)

	_, _, err = execute(t, "classify", "--all", "a/*", "b.js")
	require.ErrorIs(t, err, errNotAllMasks)
}
