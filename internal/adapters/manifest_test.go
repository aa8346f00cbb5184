package adapters

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"galaxy-audit/internal/types"
)

func TestManifestJSONDependencies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MANIFEST.json")
	writeFile(t, path, `{
  "collection_info": {
    "namespace": "community",
    "name": "general",
    "dependencies": {
      "ansible.netcommon": ">=2.3.2,<3.0.0",
      "ansible.utils": ">=1.0.0"
    }
  }
}`)

	deps, err := NewManifestAdapter().Dependencies(types.DeclarationFile{
		Kind: types.DeclarationKindManifestJSON,
		Path: path,
	})
	require.NoError(t, err)
	expected := map[string]string{
		"ansible.netcommon": ">=2.3.2,<3.0.0",
		"ansible.utils":     ">=1.0.0",
	}
	if diff := cmp.Diff(expected, deps); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
}

func TestGalaxyYMLDependencies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.yml")
	writeFile(t, path, `namespace: community
name: general
version: 4.0.0
dependencies:
  community.general: ">=3.0.0,<4.0.0"
`)

	deps, err := NewManifestAdapter().Dependencies(types.DeclarationFile{
		Kind: types.DeclarationKindGalaxyYML,
		Path: path,
	})
	require.NoError(t, err)
	expected := map[string]string{"community.general": ">=3.0.0,<4.0.0"}
	if diff := cmp.Diff(expected, deps); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
}

func TestDependenciesSectionMayBeAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.yml")
	writeFile(t, path, "namespace: community\nname: general\n")

	deps, err := NewManifestAdapter().Dependencies(types.DeclarationFile{
		Kind: types.DeclarationKindGalaxyYML,
		Path: path,
	})
	require.NoError(t, err)
	require.Empty(t, deps)
}

func TestDependenciesSectionWrongShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.yml")
	writeFile(t, path, "dependencies:\n  - community.general\n")

	_, err := NewManifestAdapter().Dependencies(types.DeclarationFile{
		Kind: types.DeclarationKindGalaxyYML,
		Path: path,
	})
	require.Error(t, err)
}

func TestManifestJSONMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MANIFEST.json")
	writeFile(t, path, "{not json")

	_, err := NewManifestAdapter().Dependencies(types.DeclarationFile{
		Kind: types.DeclarationKindManifestJSON,
		Path: path,
	})
	require.Error(t, err)
}

func TestDeclarationFileUnreadable(t *testing.T) {
	_, err := NewManifestAdapter().Dependencies(types.DeclarationFile{
		Kind: types.DeclarationKindManifestJSON,
		Path: filepath.Join(t.TempDir(), "missing", "MANIFEST.json"),
	})
	require.Error(t, err)
}
