package relsort

import "strings"

// Match reports whether the query occurs in the record's searchable text.
// The query is trimmed and compared case-insensitively; an empty query
// matches every record.
func Match(r Release, query string) bool {
	q := toTok(query)
	if q == "" {
		return true
	}

	return strings.Contains(haystack(&r), q)
}

// Filter returns the records matching query, in input order.
func Filter(in []Release, query string) []Release {
	q := toTok(query)

	out := make([]Release, 0, len(in))
	for i := range in {
		if q == "" || strings.Contains(haystack(&in[i]), q) {
			out = append(out, in[i])
		}
	}

	return out
}

// haystack joins version, date, channel, build, changes and tags with
// single spaces, skipping empty fields, and lowercases the result.
func haystack(r *Release) string {
	var b strings.Builder

	add := func(s string) {
		if s == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}

	add(r.Version)
	add(r.Date)
	add(r.Channel)
	add(r.Build.String())
	for _, c := range r.Changes {
		add(c)
	}
	for _, t := range r.Tags {
		add(t)
	}

	return strings.ToLower(b.String())
}
