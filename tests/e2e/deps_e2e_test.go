package e2e

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"galaxy-audit/internal/types"
	"galaxy-audit/tests/testutil"
)

func TestDepsCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	collectionDir := t.TempDir()
	testutil.WriteGalaxyYML(t, collectionDir, map[string]string{
		"community.general": ">=3.0.0,<4.0.0",
	})
	reportPath := filepath.Join(t.TempDir(), "deps.json")

	cmd := exec.Command("go", "run", "./cmd/galaxy-audit", "deps",
		"--dir", collectionDir,
		"--no-inventory",
		"--output", reportPath,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var results []types.FileDefinedDependencies
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 1)
	require.Equal(t, "galaxy.ansible.com", results[0].RegistryHostName)
	require.Len(t, results[0].Dependencies, 1)
	require.Equal(t, "community.general", results[0].Dependencies[0].Name)
	require.NotNil(t, results[0].Dependencies[0].Version)
	require.Equal(t, "3.0.0", *results[0].Dependencies[0].Version)
}

func TestDepsCommandE2ENoDeclarationFile(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/galaxy-audit", "deps",
		"--dir", t.TempDir(),
		"--no-inventory",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "[]")
}
