package relsort

import sv "github.com/woozymasta/semver"

// parseSemver picks the cheapest semver parser based on whether canonical
// output is needed later. When wantCanonical=false, avoids building Canonical.
func parseSemver(s string, wantCanonical bool) (sv.Semver, bool) {
	if wantCanonical {
		return sv.Parse(s)
	}

	return sv.ParseNoCanon(s)
}

// Canonical renders a strictly valid SemVer version as vMAJOR.MINOR.PATCH[-PRERELEASE],
// dropping build metadata. Anything else is returned unchanged with ok=false.
func Canonical(version string) (string, bool) {
	v, ok := parseSemver(version, true)
	if !ok || !v.IsValid() {
		return version, false
	}

	return v.Canonical(), true
}
