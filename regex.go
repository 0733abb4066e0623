package relsort

import "regexp"

var (
	// Loose semver shape: X.Y.Z with optional leading "v" and "-" suffix.
	semverShapeRe = regexp.MustCompile(`^[vV]?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)
)
