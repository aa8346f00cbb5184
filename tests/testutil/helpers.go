// Package testutil provides shared test helpers used across e2e and
// unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteGalaxyYML writes a galaxy.yml declaring the given dependencies
// into dir and returns its path.
func WriteGalaxyYML(t *testing.T, dir string, dependencies map[string]string) string {
	t.Helper()
	content := "namespace: test\nname: collection\nversion: 1.0.0\ndependencies:\n"
	for name, requirement := range dependencies {
		content += "  " + name + ": \"" + requirement + "\"\n"
	}
	path := filepath.Join(dir, "galaxy.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
