package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Op is a version requirement comparator operator.
type Op string

const (
	OpExact    Op = "="
	OpGt       Op = ">"
	OpGte      Op = ">="
	OpLt       Op = "<"
	OpLte      Op = "<="
	OpTilde    Op = "~"
	OpCaret    Op = "^"
	OpWildcard Op = "*"
)

// opTokens is the ordered list of operator tokens tried during parsing.
// Longer tokens must precede shorter ones to avoid false matches
// (e.g. ">=" before ">").
var opTokens = []Op{
	OpGte,
	OpLte,
	OpExact,
	OpGt,
	OpLt,
	OpTilde,
	OpCaret,
}

// Comparator is one clause of a version requirement, e.g. ">=2.3".
// The version part may be partial: major is always present, minor and
// patch are nil when not written out.
type Comparator struct {
	Op    Op
	Major uint64
	Minor *uint64
	Patch *uint64
	Pre   string
	Raw   string
}

// VersionString returns the comparator's version text with the operator
// stripped, e.g. "2.3" for ">=2.3".
func (c Comparator) VersionString() string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(c.Raw), string(c.Op)))
}

// Requirement is a parsed version requirement: a conjunction of
// comparators. Matching semantics delegate to the semver library so the
// full range grammar (tilde, caret, wildcards) behaves per spec.
type Requirement struct {
	Raw         string
	Comparators []Comparator

	constraints *semver.Constraints
}

// Matches reports whether the given version satisfies every comparator.
func (r Requirement) Matches(version *semver.Version) bool {
	if r.constraints == nil || version == nil {
		return false
	}
	return r.constraints.Check(version)
}

// ParseRequirement parses a requirement string such as ">=2.3.2,<3.0.0"
// into a Requirement. A lone "*" clause contributes no comparator but
// still matches every version.
func ParseRequirement(raw string) (Requirement, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty version requirement")
	}
	constraints, err := semver.NewConstraint(trimmed)
	if err != nil {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version requirement: %s", raw)).
			WithCause(err)
	}
	var comparators []Comparator
	for _, clause := range strings.Split(trimmed, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" || clause == "*" {
			continue
		}
		comparator, err := ParseComparator(clause)
		if err != nil {
			return Requirement{}, err
		}
		comparators = append(comparators, comparator)
	}
	return Requirement{
		Raw:         trimmed,
		Comparators: comparators,
		constraints: constraints,
	}, nil
}

// ParseComparator splits a raw ">=1.2" clause into a Comparator. A bare
// version with no operator is an exact pin.
func ParseComparator(raw string) (Comparator, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Comparator{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty comparator")
	}
	op := OpExact
	rest := trimmed
	for _, token := range opTokens {
		if strings.HasPrefix(trimmed, string(token)) {
			op = token
			rest = strings.TrimSpace(strings.TrimPrefix(trimmed, string(token)))
			break
		}
	}
	if rest == "" {
		return Comparator{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("comparator has no version: %s", raw))
	}

	comparator := Comparator{Op: op, Raw: trimmed}
	core, pre, _ := strings.Cut(rest, "-")
	comparator.Pre = pre

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return Comparator{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid comparator version: %s", raw))
	}
	for i, part := range parts {
		if isWildcardPart(part) {
			comparator.Op = OpWildcard
			break
		}
		value, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Comparator{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid comparator version: %s", raw)).
				WithCause(err)
		}
		switch i {
		case 0:
			comparator.Major = value
		case 1:
			minor := value
			comparator.Minor = &minor
		case 2:
			patch := value
			comparator.Patch = &patch
		}
	}
	return comparator, nil
}

func isWildcardPart(part string) bool {
	switch part {
	case "*", "x", "X":
		return true
	default:
		return false
	}
}

// anchorOps are the operators that carry an explicit version floor or
// pin. Open-ended exclusion bounds (">", "<") and wildcards do not
// anchor a concrete version.
var anchorOps = map[Op]struct{}{
	OpExact: {},
	OpGte:   {},
	OpLte:   {},
	OpTilde: {},
	OpCaret: {},
}

// SelectLatestAnchor picks the numerically greatest comparator among
// those whose operator anchors a concrete version. Reports false when no
// comparator is eligible. This is a heuristic for "the version the
// requirement author intended", not a range-satisfaction solver.
func SelectLatestAnchor(comparators []Comparator) (Comparator, bool) {
	ordered := append([]Comparator(nil), comparators...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return compareComparators(ordered[i], ordered[j]) < 0
	})
	var selected Comparator
	found := false
	for _, comparator := range ordered {
		if _, ok := anchorOps[comparator.Op]; ok {
			selected = comparator
			found = true
		}
	}
	return selected, found
}

// compareComparators orders comparators by (major, minor-or-0,
// patch-or-0, prerelease) with semver precedence for the prerelease
// component.
func compareComparators(a Comparator, b Comparator) int {
	if a.Major != b.Major {
		return compareUint64(a.Major, b.Major)
	}
	if diff := compareUint64(orZero(a.Minor), orZero(b.Minor)); diff != 0 {
		return diff
	}
	if diff := compareUint64(orZero(a.Patch), orZero(b.Patch)); diff != 0 {
		return diff
	}
	return comparePrerelease(a.Pre, b.Pre)
}

func orZero(value *uint64) uint64 {
	if value == nil {
		return 0
	}
	return *value
}

func compareUint64(a uint64, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePrerelease implements semver precedence for pre-release
// identifier sequences: a version without a pre-release component is
// greater than one with it.
func comparePrerelease(a string, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")
	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		if diff := comparePrereleaseIdentifier(aParts[i], bParts[i]); diff != 0 {
			return diff
		}
	}
	switch {
	case len(aParts) < len(bParts):
		return -1
	case len(aParts) > len(bParts):
		return 1
	default:
		return 0
	}
}

// comparePrereleaseIdentifier compares one dot-separated identifier:
// numeric identifiers compare numerically and rank below alphanumeric
// ones, which compare lexically.
func comparePrereleaseIdentifier(a string, b string) int {
	aNum, aErr := strconv.ParseUint(a, 10, 64)
	bNum, bErr := strconv.ParseUint(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		return compareUint64(aNum, bNum)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
