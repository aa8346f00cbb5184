package ports

import (
	"context"

	"galaxy-audit/internal/types"
)

// RegistryPort queries the remote collection registry.
type RegistryPort interface {
	// HostName returns the registry host, e.g. "galaxy.ansible.com".
	HostName() string

	// HumanURL returns the browsable page for a collection.
	HumanURL(name string) (string, error)

	// LatestVersion returns the greatest published version of a
	// collection; entries with unparsable versions are skipped.
	LatestVersion(ctx context.Context, name string) (string, error)

	// Release returns the registry record for one collection version.
	Release(ctx context.Context, name string, version string) (types.RegistryRelease, error)
}
