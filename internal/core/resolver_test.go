package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

func TestResolveVersionInstalledMatchWins(t *testing.T) {
	requirement, err := ParseRequirement(">=3.0.0,<4.0.0")
	require.NoError(t, err)
	installed, err := NormalizeVersion("3.2.1")
	require.NoError(t, err)

	version, err := ResolveVersion(requirement, installed)
	require.NoError(t, err)
	require.Equal(t, "3.2.1", version.String())
}

func TestResolveVersionNoInstalledUsesAnchor(t *testing.T) {
	requirement, err := ParseRequirement(">=3.0.0,<4.0.0")
	require.NoError(t, err)

	version, err := ResolveVersion(requirement, nil)
	require.NoError(t, err)
	require.Equal(t, "3.0.0", version.String())
}

func TestResolveVersionAnchorIsNormalized(t *testing.T) {
	requirement, err := ParseRequirement(">=2.3")
	require.NoError(t, err)

	version, err := ResolveVersion(requirement, nil)
	require.NoError(t, err)
	require.Equal(t, "2.3.0", version.String())
}

func TestResolveVersionMismatchedInstalledDiscarded(t *testing.T) {
	// An installed version outside the range does not win; the anchor
	// comparator takes over.
	requirement, err := ParseRequirement(">=3.0.0,<4.0.0")
	require.NoError(t, err)
	installed, err := NormalizeVersion("5.0.0")
	require.NoError(t, err)

	version, err := ResolveVersion(requirement, installed)
	require.NoError(t, err)
	require.Equal(t, "3.0.0", version.String())
}

func TestResolveVersionNoAnchorFails(t *testing.T) {
	requirement, err := ParseRequirement(">1.0.0")
	require.NoError(t, err)

	_, err = ResolveVersion(requirement, nil)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestResolveVersionMismatchedInstalledNoAnchorFails(t *testing.T) {
	requirement, err := ParseRequirement(">2.0.0")
	require.NoError(t, err)
	installed, err := NormalizeVersion("1.0.0")
	require.NoError(t, err)

	_, err = ResolveVersion(requirement, installed)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestResolveVersionWildcardOnlyFails(t *testing.T) {
	requirement, err := ParseRequirement("*")
	require.NoError(t, err)

	_, err = ResolveVersion(requirement, nil)
	require.Error(t, err)
}
