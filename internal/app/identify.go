package app

import (
	"context"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galaxy-audit/internal/adapters"
	"galaxy-audit/internal/core"
	"galaxy-audit/internal/types"
)

// IdentifyRequest carries the inputs for a dependency identification run.
type IdentifyRequest struct {
	WorkingDirectory string
	// SkipInventory disables the installed-collection lookup, forcing
	// every dependency to resolve from its declared requirement alone.
	SkipInventory bool
}

// IdentifyFileDefinedDependencies locates the nearest declaration file
// under the working directory and resolves each declared dependency to a
// concrete version. The result has at most one entry; it is empty when
// no declaration file exists.
func (s Service) IdentifyFileDefinedDependencies(ctx context.Context, req IdentifyRequest) ([]types.FileDefinedDependencies, error) {
	workingDirectory := strings.TrimSpace(req.WorkingDirectory)
	if workingDirectory == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("working directory is required")
	}

	candidates, err := s.Locator.Locate(workingDirectory)
	if err != nil {
		return nil, err
	}
	file, ok := adapters.SelectPreferred(candidates)
	if !ok {
		return []types.FileDefinedDependencies{}, nil
	}

	installed := types.GlobalVersions{}
	if !req.SkipInventory {
		installed, err = s.Inventory.ListInstalled(ctx)
		if err != nil {
			return nil, err
		}
	}

	declared, err := s.Parser.Dependencies(file)
	if err != nil {
		return nil, err
	}
	dependencies, err := resolveDeclared(declared, installed)
	if err != nil {
		return nil, err
	}

	return []types.FileDefinedDependencies{{
		Path:             file.Path,
		RegistryHostName: s.Registry.HostName(),
		Dependencies:     dependencies,
	}}, nil
}

// resolveDeclared resolves each declared (name, requirement) pair into a
// dependency record, deduplicating by (name, version). A dependency
// whose resolution fails is still emitted with a nil version; a
// requirement that cannot be parsed at all fails the run.
func resolveDeclared(declared map[string]string, installed types.GlobalVersions) ([]types.Dependency, error) {
	seen := map[string]struct{}{}
	var dependencies []types.Dependency
	for name, rawRequirement := range declared {
		requirement, err := core.ParseRequirement(rawRequirement)
		if err != nil {
			return nil, err
		}
		installedVersion := installedVersionFor(name, installed)

		dependency := types.Dependency{Name: name}
		version, err := core.ResolveVersion(requirement, installedVersion)
		if err != nil {
			log.Debug().Str("collection", name).Str("requirement", rawRequirement).
				Msg("no usable version, recording dependency without one")
		} else {
			text := version.String()
			dependency.Version = &text
		}

		if _, duplicate := seen[dependency.Key()]; duplicate {
			continue
		}
		seen[dependency.Key()] = struct{}{}
		dependencies = append(dependencies, dependency)
	}
	sort.Slice(dependencies, func(i, j int) bool {
		return dependencies[i].Key() < dependencies[j].Key()
	})
	return dependencies, nil
}

// installedVersionFor looks up a collection in the inventory. A missing
// entry or an unparsable version string both mean "no installed version
// known"; the inventory is best-effort signal, not authoritative.
func installedVersionFor(name string, installed types.GlobalVersions) *semver.Version {
	raw, ok := installed[name]
	if !ok {
		return nil
	}
	version, err := semver.StrictNewVersion(raw)
	if err != nil {
		log.Debug().Str("collection", name).Str("version", raw).
			Msg("ignoring unparsable installed version")
		return nil
	}
	return version
}
