package relsort

import (
	"github.com/Masterminds/semver/v3"
)

// compileConstraint parses a constraint expression.
// An empty or malformed expression yields nil, which disables the check.
func compileConstraint(expr string) *semver.Constraints {
	if expr == "" {
		return nil
	}

	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil
	}

	return c
}

// CheckConstraint reports why expr does not parse as a constraint expression.
func CheckConstraint(expr string) error {
	_, err := semver.NewConstraint(expr)
	return err
}

// applyConstraint keeps records whose version satisfies c.
// Versions that are not SemVer never satisfy a constraint.
func applyConstraint(in []Release, c *semver.Constraints) []Release {
	if c == nil {
		return in
	}

	out := make([]Release, 0, len(in))
	for i := range in {
		v, err := semver.NewVersion(in[i].Version)
		if err != nil || !c.Check(v) {
			continue
		}
		out = append(out, in[i])
	}

	return out
}
