package relsort

import (
	"strings"
)

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// capReleases returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capReleases(out []Release, limit int) []Release {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}
