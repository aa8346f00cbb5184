package core

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// ResolveVersion returns the single concrete version to treat as
// authoritative for a requirement.
//
// An installed version that satisfies the requirement always wins. When
// it is absent, the requirement's latest anchor comparator is normalized
// into a concrete version instead. An installed version that does NOT
// satisfy the requirement is discarded in favor of the anchor-derived
// fallback; the mismatch is logged but not reported as a conflict.
func ResolveVersion(requirement Requirement, installed *semver.Version) (*semver.Version, error) {
	if installed != nil {
		if requirement.Matches(installed) {
			return installed, nil
		}
		log.Debug().
			Str("installed", installed.String()).
			Str("requirement", requirement.Raw).
			Msg("installed version does not satisfy requirement, falling back to declared anchor")
	}

	comparator, ok := SelectLatestAnchor(requirement.Comparators)
	if !ok {
		return nil, missingVersionError(requirement)
	}
	version, err := NormalizeVersion(comparator.VersionString())
	if err != nil {
		return nil, missingVersionError(requirement)
	}
	return version, nil
}

func missingVersionError(requirement Requirement) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("no usable version for requirement: %s", requirement.Raw))
}
