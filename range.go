package relsort

import "github.com/woozymasta/semver"

// bounds is a compiled Range: an optional floor and a strict ceiling.
type bounds struct {
	minFloor     semver.Semver
	maxCeil      semver.Semver // strict exclusive ceiling
	haveMin      bool
	haveMax      bool
	minExclusive bool
}

func compileRange(r Range) bounds {
	var b bounds
	if r.Min != "" {
		b.minFloor, b.minExclusive, b.haveMin = compileMin(r.Min, r.MinExclusive, r.IncludePrerelease)
	}
	if r.Max != "" {
		b.maxCeil, b.haveMax = compileMaxExclusive(r.Max, r.MaxExclusive)
	}

	return b
}

// contains reports whether v lies inside the bounds.
func (b bounds) contains(v semver.Semver) bool {
	if b.haveMin {
		c := v.Compare(b.minFloor)
		if c < 0 || (c == 0 && b.minExclusive) {
			return false
		}
	}

	if b.haveMax && v.Compare(b.maxCeil) >= 0 {
		return false
	}

	return true
}

// clipRange keeps records whose version is valid SemVer inside r.
func clipRange(in []Release, r Range) []Release {
	b := compileRange(r)
	if !b.haveMin && !b.haveMax {
		return in
	}

	out := make([]Release, 0, len(in))
	for i := range in {
		v, ok := parseSemver(in[i].Version, false)
		if !ok || !v.IsValid() || !b.contains(v) {
			continue
		}
		out = append(out, in[i])
	}

	return out
}

// compileMin parses the lower bound once. Shorthand bounds floor to X.0.0 / X.Y.0,
// optionally with prerelease "0" so that X.Y.0-alpha is included.
func compileMin(raw string, minExclusive bool, includePreAtFloor bool) (semver.Semver, bool, bool) {
	v, ok := parseSemver(raw, false)
	if !ok || !v.IsValid() {
		return semver.Semver{}, false, false
	}

	// shorthand X / X.Y
	if !v.HasPatch() {
		maj, min := v.Major, 0
		if v.HasMinor() {
			min = v.Minor
		}

		if includePreAtFloor {
			// >= X.Y.0-0
			return makeSemver(maj, min, 0, "0"), minExclusive, true
		}

		return makeSemver(maj, min, 0, ""), minExclusive, true
	}

	return v, minExclusive, true
}

// compileMaxExclusive turns the upper bound into a strict ceiling.
// Shorthand X:   excl -> < X.0.0-0;  incl -> < (X+1).0.0-0
// Shorthand X.Y: excl -> < X.Y.0-0;  incl -> < X.(Y+1).0-0
// Full:
//
//	excl -> < v
//	incl -> pre: < v.pre.0; release: < X.Y.(Z+1)-0
func compileMaxExclusive(raw string, maxExclusive bool) (semver.Semver, bool) {
	v, ok := parseSemver(raw, false)
	if !ok || !v.IsValid() {
		return semver.Semver{}, false
	}

	if !v.HasPatch() {
		maj, min := v.Major, 0
		if v.HasMinor() {
			min = v.Minor
		}
		if maxExclusive {
			return makeSemver(maj, min, 0, "0"), true
		}
		if !v.HasMinor() {
			return makeSemver(maj+1, 0, 0, "0"), true
		}
		return makeSemver(maj, min+1, 0, "0"), true
	}

	if maxExclusive {
		return v, true
	}

	if v.HasPre() {
		// <= 1.2.3-alpha -> < 1.2.3-alpha.0
		return makeSemver(v.Major, v.Minor, v.Patch, v.Prerelease+".0"), true
	}

	// <= 1.2.3 -> < 1.2.4-0
	return makeSemver(v.Major, v.Minor, v.Patch+1, "0"), true
}

// makeSemver builds a Semver without parsing.
// prerelease has no leading '-' (e.g. "0" or "alpha.0").
func makeSemver(maj, min, pat int, prerelease string) semver.Semver {
	flags := semver.FlagHasMajor | semver.FlagHasMinor | semver.FlagHasPatch
	if prerelease != "" {
		flags |= semver.FlagHasPre
	}

	return semver.Semver{
		Major:      maj,
		Minor:      min,
		Patch:      pat,
		Prerelease: prerelease,
		Flags:      flags,
		Valid:      true,
	}
}
