package relsort

// Apply filters records by query, then orders the matches by key.
// Equivalent to Sort(Filter(in, query), key).
func Apply(in []Release, query string, key SortKey) []Release {
	return Sort(Filter(in, query), key)
}

// Select filters, sorts and caps records in one call.
// Simple, readable pipeline:
//  1. cheap raw prefilter (Channel/Include/Exclude)
//  2. text query
//  3. Range -> Constraint (SemVer only)
//  4. Sort
//  5. Limit
//
// Filtering never depends on the sort key.
func Select(in []Release, opt Options) []Release {
	out := narrow(in, opt)
	out = Sort(out, opt.Sort)

	return capReleases(out, opt.Limit)
}

// Latest returns the newest release by semantic version, or false when in is empty.
func Latest(in []Release) (Release, bool) {
	if len(in) == 0 {
		return Release{}, false
	}

	best := newRec(&in[0])
	for i := 1; i < len(in); i++ {
		r := newRec(&in[i])
		if registry[SortSemverDesc](&r, &best) < 0 {
			best = r
		}
	}

	return *best.r, true
}
