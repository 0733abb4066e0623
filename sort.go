package relsort

import (
	"cmp"
	"slices"
)

// rec is a record with its sort keys normalized once.
type rec struct {
	r     *Release
	ver   Version
	build float64
	date  float64
}

func newRec(r *Release) rec {
	return rec{
		r:     r,
		ver:   ParseVersion(r.Version),
		build: NormalizeBuild(r.Build),
		date:  NormalizeDate(r.Date),
	}
}

// comparator is a total order over normalized records.
type comparator func(a, b *rec) int

func byBuild(a, b *rec) int   { return cmp.Compare(a.build, b.build) }
func byDate(a, b *rec) int    { return cmp.Compare(a.date, b.date) }
func byVersion(a, b *rec) int { return CompareVersion(a.ver, b.ver) }

// desc reverses a comparator.
func desc(c comparator) comparator {
	return func(a, b *rec) int { return c(b, a) }
}

// chain tries comparators in order; the first non-zero result wins.
func chain(cs ...comparator) comparator {
	return func(a, b *rec) int {
		for _, c := range cs {
			if n := c(a, b); n != 0 {
				return n
			}
		}
		return 0
	}
}

// registry maps each SortKey to its primary key plus tie-breakers.
var registry = [...]comparator{
	SortBuildDesc:  chain(desc(byBuild), desc(byDate), desc(byVersion)),
	SortBuildAsc:   chain(byBuild, byDate, byVersion),
	SortSemverDesc: chain(desc(byVersion), desc(byDate)),
	SortSemverAsc:  chain(byVersion, byDate),
	SortDateDesc:   chain(desc(byDate), desc(byBuild)),
	SortDateAsc:    chain(byDate, byBuild),
}

// Compare orders a and b under k. SortNone treats every pair as equal.
func (k SortKey) Compare(a, b Release) int {
	if !k.Valid() {
		return 0
	}

	ra, rb := newRec(&a), newRec(&b)

	return registry[k](&ra, &rb)
}

// Sort returns records ordered by k. The sort is stable, so records with
// equal keys keep their input order. The input slice is not modified;
// SortNone returns a copy in input order.
func Sort(in []Release, k SortKey) []Release {
	out := slices.Clone(in)
	if !k.Valid() || len(out) < 2 {
		return out
	}

	rs := make([]rec, len(out))
	for i := range out {
		rs[i] = newRec(&out[i])
	}

	c := registry[k]
	slices.SortStableFunc(rs, func(a, b rec) int { return c(&a, &b) })

	sorted := make([]Release, len(rs))
	for i := range rs {
		sorted[i] = *rs[i].r
	}

	return sorted
}

// IsSorted reports whether records are already ordered by k.
func IsSorted(in []Release, k SortKey) bool {
	if !k.Valid() {
		return true
	}

	c := registry[k]
	for i := 1; i < len(in); i++ {
		a, b := newRec(&in[i-1]), newRec(&in[i])
		if c(&a, &b) > 0 {
			return false
		}
	}

	return true
}
