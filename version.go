package relsort

import (
	"cmp"
	"strconv"
	"strings"
)

// Version is a leniently parsed MAJOR.MINOR.PATCH[-PRERELEASE].
type Version struct {
	Prerelease string
	Major      int
	Minor      int
	Patch      int
}

// ParseVersion never fails: missing or non-numeric components are 0,
// segments past the third are ignored.
//
//	"v1.2.3-rc.1" -> 1.2.3 "rc.1"
//	"2.x"         -> 2.0.0
//	""            -> 0.0.0
func ParseVersion(s string) Version {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
		s = s[1:]
	}

	core, pre, _ := strings.Cut(s, "-")

	var nums [3]int
	for i, part := range strings.SplitN(core, ".", 4) {
		if i == len(nums) {
			break
		}
		nums[i] = leadingInt(part)
	}

	return Version{
		Major:      nums[0],
		Minor:      nums[1],
		Patch:      nums[2],
		Prerelease: pre,
	}
}

// String renders the version as MAJOR.MINOR.PATCH[-PRERELEASE].
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(v.Major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Minor))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Patch))
	if v.Prerelease != "" {
		b.WriteByte('-')
		b.WriteString(v.Prerelease)
	}

	return b.String()
}

// IsPrerelease reports whether the version carries a pre-release tag.
func (v Version) IsPrerelease() bool {
	return v.Prerelease != ""
}

// CompareVersion orders versions by major, minor and patch, then puts a
// pre-release before its release. Two pre-releases compare as plain text,
// so "rc.10" < "rc.9".
func CompareVersion(a, b Version) int {
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Patch, b.Patch); c != 0 {
		return c
	}

	switch {
	case a.Prerelease == b.Prerelease:
		return 0
	case a.Prerelease == "":
		return 1
	case b.Prerelease == "":
		return -1
	default:
		return strings.Compare(a.Prerelease, b.Prerelease)
	}
}

// CompareVersionStrings parses both strings and compares them.
func CompareVersionStrings(a, b string) int {
	return CompareVersion(ParseVersion(a), ParseVersion(b))
}

// leadingInt parses the run of leading ASCII digits; no digits is 0.
// Values past the int range saturate.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	// on overflow Atoi returns the saturated value alongside the error
	n, _ := strconv.Atoi(s[:end])

	return n
}
