package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"galaxy-audit/internal/types"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLocateFindsNearestLevel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "galaxy.yml"), "dependencies: {}\n")
	nested := filepath.Join(root, "roles", "common", "tasks")
	require.NoError(t, os.MkdirAll(nested, 0755))

	files, err := NewDeclarationFileAdapter().Locate(nested)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, types.DeclarationKindGalaxyYML, files[0].Kind)
	require.Equal(t, filepath.Join(root, "galaxy.yml"), files[0].Path)
}

func TestLocateStopsAtFirstMatchingLevel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "galaxy.yml"), "dependencies: {}\n")
	child := filepath.Join(root, "collection")
	writeFile(t, filepath.Join(child, "MANIFEST.json"), "{}")

	files, err := NewDeclarationFileAdapter().Locate(child)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, types.DeclarationKindManifestJSON, files[0].Kind)
}

func TestLocateReturnsBothFilesAtSameLevel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "MANIFEST.json"), "{}")
	writeFile(t, filepath.Join(root, "galaxy.yml"), "dependencies: {}\n")

	files, err := NewDeclarationFileAdapter().Locate(root)
	require.NoError(t, err)
	require.Len(t, files, 2)
}

func TestLocateNoDeclarationFiles(t *testing.T) {
	root := t.TempDir()

	files, err := NewDeclarationFileAdapter().Locate(root)
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestLocateRejectsRelativePath(t *testing.T) {
	_, err := NewDeclarationFileAdapter().Locate("relative/path")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestSelectPreferredPrefersGalaxyYML(t *testing.T) {
	files := []types.DeclarationFile{
		{Kind: types.DeclarationKindManifestJSON, Path: "/c/MANIFEST.json"},
		{Kind: types.DeclarationKindGalaxyYML, Path: "/c/galaxy.yml"},
	}
	selected, ok := SelectPreferred(files)
	require.True(t, ok)
	require.Equal(t, types.DeclarationKindGalaxyYML, selected.Kind)
}

func TestSelectPreferredFallsBackToFirst(t *testing.T) {
	files := []types.DeclarationFile{
		{Kind: types.DeclarationKindManifestJSON, Path: "/c/MANIFEST.json"},
	}
	selected, ok := SelectPreferred(files)
	require.True(t, ok)
	require.Equal(t, types.DeclarationKindManifestJSON, selected.Kind)
}

func TestSelectPreferredEmpty(t *testing.T) {
	_, ok := SelectPreferred(nil)
	require.False(t, ok)
}
