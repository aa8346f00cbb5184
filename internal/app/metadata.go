package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"galaxy-audit/internal/types"
)

// RegistriesPackageMetadata returns registry metadata for one collection
// version. When no version is supplied the latest published version is
// used. Exactly one entry is returned; the Galaxy registry is always the
// primary source for Ansible collections.
func (s Service) RegistriesPackageMetadata(ctx context.Context, name string, version string) ([]types.RegistryPackageMetadata, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}

	version = strings.TrimSpace(version)
	if version == "" {
		latest, err := s.Registry.LatestVersion(ctx, name)
		if err != nil {
			return nil, err
		}
		version = latest
	}

	humanURL, err := s.Registry.HumanURL(name)
	if err != nil {
		return nil, err
	}
	release, err := s.Registry.Release(ctx, name, version)
	if err != nil {
		return nil, err
	}

	return []types.RegistryPackageMetadata{{
		RegistryHostName: s.Registry.HostName(),
		HumanURL:         humanURL,
		ArtifactURL:      release.DownloadURL,
		IsPrimary:        true,
		PackageVersion:   release.Version,
	}}, nil
}

// InstalledCollections exposes the inventory listing for direct
// inspection.
func (s Service) InstalledCollections(ctx context.Context) (types.GlobalVersions, error) {
	return s.Inventory.ListInstalled(ctx)
}
