package core

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
)

// NormalizeVersion converts a loosely-formed version string into a
// strict three-component semantic version. Missing minor or patch
// components are padded with zeros; an optional pre-release/build tail
// after the first "-" is reattached verbatim.
//
//	"1"             -> 1.0.0
//	"0.1"           -> 0.1.0
//	"0.1-alpha-123" -> 0.1.0-alpha-123
func NormalizeVersion(raw string) (*semver.Version, error) {
	normalized, err := padVersionCore(raw)
	if err != nil {
		return nil, err
	}
	version, err := semver.StrictNewVersion(normalized)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version: %s", raw)).
			WithCause(err)
	}
	return version, nil
}

// padVersionCore pads the dotted core of a version string to three
// components without touching the pre-release tail.
func padVersionCore(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty version")
	}
	core, tail, hasTail := strings.Cut(raw, "-")

	switch strings.Count(core, ".") {
	case 0:
		core += ".0.0"
	case 1:
		core += ".0"
	}

	if hasTail {
		return core + "-" + tail, nil
	}
	return core, nil
}
