package relsort

import "regexp"

// Options configures Select.
type Options struct {
	// Include keeps only records whose version matches.
	Include *regexp.Regexp

	// Exclude drops records whose version matches.
	Exclude *regexp.Regexp

	// Query is the free-text search; empty matches everything.
	Query string

	// Channel keeps only records on this channel (case-insensitive).
	// Empty disables the check.
	Channel string

	// Constraint is a semver constraint expression such as ">= 1.2, < 2".
	// Records whose version is not valid semver are dropped while it is set.
	// An expression that does not parse disables the check.
	Constraint string

	// Range clips versions to [Min, Max]. Applied after the text query.
	Range Range

	// Limit caps the output after sorting; <= 0 means unlimited.
	Limit int

	// Sort defines final output ordering; SortNone keeps input order.
	Sort SortKey
}

// Range clips versions to [Min, Max] with optional exclusive ends.
// Min/Max accept X, X.Y, X.Y.Z (with optional 'v') or full SemVer (may include -prerelease).
type Range struct {
	Min string // empty => no lower bound
	Max string // empty => no upper bound

	// When true => exclusive bound. Default false => inclusive.
	MinExclusive bool
	MaxExclusive bool

	// When Min is shorthand (X or X.Y), include pre-releases at the floor by using "-0".
	// E.g. Min="1.2" + IncludePrerelease=true => lower floor is "1.2.0-0".
	IncludePrerelease bool
}

// Enabled reports whether any bound is set.
func (r Range) Enabled() bool {
	return r.Min != "" || r.Max != ""
}

// SortKey names one comparator of the registry.
type SortKey uint8

const (
	// SortNone preserves the existing order.
	SortNone SortKey = iota
	// SortBuildDesc orders by build number, highest first.
	SortBuildDesc
	// SortBuildAsc orders by build number, lowest first.
	SortBuildAsc
	// SortSemverDesc orders by semantic version, newest first.
	SortSemverDesc
	// SortSemverAsc orders by semantic version, oldest first.
	SortSemverAsc
	// SortDateDesc orders by release date, newest first.
	SortDateDesc
	// SortDateAsc orders by release date, oldest first.
	SortDateAsc
)

var sortKeyNames = [...]string{
	SortNone:       "none",
	SortBuildDesc:  "build-desc",
	SortBuildAsc:   "build-asc",
	SortSemverDesc: "semver-desc",
	SortSemverAsc:  "semver-asc",
	SortDateDesc:   "date-desc",
	SortDateAsc:    "date-asc",
}

// String returns the registry name, e.g. "build-desc".
func (k SortKey) String() string {
	if int(k) < len(sortKeyNames) {
		return sortKeyNames[k]
	}

	return sortKeyNames[SortNone]
}

// Valid reports whether k names a registered comparator.
func (k SortKey) Valid() bool {
	return k > SortNone && int(k) < len(sortKeyNames)
}

// SortKeys lists the registered comparators in display order.
func SortKeys() []SortKey {
	return []SortKey{
		SortBuildDesc, SortBuildAsc,
		SortSemverDesc, SortSemverAsc,
		SortDateDesc, SortDateAsc,
	}
}

// ParseSortKey maps a registry name to its SortKey.
// Matching ignores case and surrounding spaces; anything else is rejected
// with (SortNone, false) so callers can keep their current key.
func ParseSortKey(s string) (SortKey, bool) {
	tok := toTok(s)
	for _, k := range SortKeys() {
		if tok == k.String() {
			return k, true
		}
	}

	return SortNone, false
}

// MarshalText implements encoding.TextMarshaler.
func (k SortKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown names decode to SortNone.
func (k *SortKey) UnmarshalText(b []byte) error {
	*k, _ = ParseSortKey(string(b))
	return nil
}
