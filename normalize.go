package relsort

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order; layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
	"2006-01",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// lowest is the sentinel for missing or unparseable sort keys.
var lowest = math.Inf(-1)

// NormalizeBuild coerces a build identifier to a number.
// Absent, unparseable and non-finite values are -Inf.
func NormalizeBuild(b BuildID) float64 {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return lowest
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && hasRadixPrefix(s) {
		var n int64
		if n, err = strconv.ParseInt(s, 0, 64); err == nil {
			f = float64(n)
		}
	}
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return lowest
	}

	return f
}

// NormalizeDate returns milliseconds since the Unix epoch.
// Absent or unrecognized dates are -Inf.
func NormalizeDate(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return lowest
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.UnixMilli())
		}
	}

	return lowest
}

// LooksLikeSemver reports whether s has the loose X.Y.Z[-pre] shape.
// Only the default-sort heuristic uses it; comparators accept anything.
func LooksLikeSemver(s string) bool {
	return semverShapeRe.MatchString(s)
}

// hasNumericBuild reports whether b coerces to a finite number.
func hasNumericBuild(b BuildID) bool {
	return !math.IsInf(NormalizeBuild(b), -1)
}

// hasRadixPrefix matches 0x / 0o / 0b integer literals.
func hasRadixPrefix(s string) bool {
	if len(s) < 3 || s[0] != '0' {
		return false
	}

	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	default:
		return false
	}
}
