package relsort

import (
	"reflect"
	"testing"
)

func versions(rs []Release) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Version
	}
	return out
}

func TestSort_BuildDesc_MissingLast(t *testing.T) {
	t.Parallel()

	in := []Release{
		{Version: "b3", Build: "3"},
		{Version: "b1", Build: "1"},
		{Version: "none"},
		{Version: "b2", Build: "2"},
	}

	got := versions(Sort(in, SortBuildDesc))
	want := []string{"b3", "b2", "b1", "none"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("build-desc got %v; want %v", got, want)
	}

	got = versions(Sort(in, SortBuildAsc))
	want = []string{"none", "b1", "b2", "b3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("build-asc got %v; want %v", got, want)
	}
}

func TestSort_BuildAsc_UnparseableFirst(t *testing.T) {
	t.Parallel()

	in := []Release{
		{Version: "one", Build: "1"},
		{Version: "abc", Build: "abc"},
		{Version: "absent"},
	}

	// both sentinels are equal, so they keep their input order
	got := versions(Sort(in, SortBuildAsc))
	want := []string{"abc", "absent", "one"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("build-asc got %v; want %v", got, want)
	}
}

func TestSort_BuildTieBreaks(t *testing.T) {
	t.Parallel()

	in := []Release{
		{Version: "1.0.0", Build: "5", Date: "2024-01-01"},
		{Version: "2.0.0", Build: "5", Date: "2024-01-01"},
		{Version: "1.5.0", Build: "5", Date: "2024-02-01"},
		{Version: "0.1.0", Build: "6"},
	}

	got := versions(Sort(in, SortBuildDesc))
	want := []string{"0.1.0", "1.5.0", "2.0.0", "1.0.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("build-desc got %v; want %v", got, want)
	}

	got = versions(Sort(in, SortBuildAsc))
	want = []string{"1.0.0", "2.0.0", "1.5.0", "0.1.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("build-asc got %v; want %v", got, want)
	}
}

func TestSort_SemverAscDesc(t *testing.T) {
	t.Parallel()

	in := []Release{
		{Version: "1.2.3"},
		{Version: "1.10.0"},
		{Version: "1.2.10"},
		{Version: "1.2.3-alpha"},
	}

	// Ascending by SemVer (pre-release < release)
	gotAsc := versions(Sort(in, SortSemverAsc))
	wantAsc := []string{"1.2.3-alpha", "1.2.3", "1.2.10", "1.10.0"}
	if !reflect.DeepEqual(gotAsc, wantAsc) {
		t.Fatalf("semver-asc got %v; want %v", gotAsc, wantAsc)
	}

	gotDesc := versions(Sort(in, SortSemverDesc))
	wantDesc := []string{"1.10.0", "1.2.10", "1.2.3", "1.2.3-alpha"}
	if !reflect.DeepEqual(gotDesc, wantDesc) {
		t.Fatalf("semver-desc got %v; want %v", gotDesc, wantDesc)
	}
}

func TestSort_SemverTieByDate(t *testing.T) {
	t.Parallel()

	in := []Release{
		{Version: "1.0.0", Date: "2024-01-01", Channel: "a"},
		{Version: "v1.0.0", Date: "2024-03-01", Channel: "b"},
		{Version: "1.0", Channel: "c"},
	}

	channels := func(rs []Release) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.Channel
		}
		return out
	}

	if got, want := channels(Sort(in, SortSemverDesc)), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("semver-desc got %v; want %v", got, want)
	}

	if got, want := channels(Sort(in, SortSemverAsc)), []string{"c", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("semver-asc got %v; want %v", got, want)
	}
}

func TestSort_DateTieByBuild(t *testing.T) {
	t.Parallel()

	in := []Release{
		{Version: "old", Date: "2023-05-01"},
		{Version: "nodate", Build: "99"},
		{Version: "new-b1", Date: "2024-05-01", Build: "1"},
		{Version: "new-b2", Date: "2024-05-01T00:00:00Z", Build: "2"},
	}

	got := versions(Sort(in, SortDateDesc))
	want := []string{"new-b2", "new-b1", "old", "nodate"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("date-desc got %v; want %v", got, want)
	}

	got = versions(Sort(in, SortDateAsc))
	want = []string{"nodate", "old", "new-b1", "new-b2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("date-asc got %v; want %v", got, want)
	}
}

func TestSort_StableForEqualKeys(t *testing.T) {
	t.Parallel()

	in := []Release{{Version: "x"}, {Version: "y"}, {Version: "z"}}

	for _, k := range SortKeys() {
		if got, want := versions(Sort(in, k)), []string{"x", "y", "z"}; !reflect.DeepEqual(got, want) {
			t.Fatalf("%v got %v; want input order %v", k, got, want)
		}
	}
}

func TestSort_Idempotent(t *testing.T) {
	t.Parallel()

	in := makeReleases(200)

	for _, k := range SortKeys() {
		once := Sort(in, k)
		twice := Sort(once, k)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("%v: sorting twice changed the order", k)
		}
		if !IsSorted(once, k) {
			t.Fatalf("%v: IsSorted = false after Sort", k)
		}
	}
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := []Release{{Version: "1.0.0"}, {Version: "3.0.0"}, {Version: "2.0.0"}}
	orig := append([]Release(nil), in...)

	_ = Sort(in, SortSemverDesc)

	if !reflect.DeepEqual(in, orig) {
		t.Fatalf("Sort modified input: got %v; want %v", in, orig)
	}
}

func TestSort_None(t *testing.T) {
	t.Parallel()

	in := []Release{{Version: "2.0.0"}, {Version: "1.0.0"}}

	got := versions(Sort(in, SortNone))
	if want := []string{"2.0.0", "1.0.0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("none got %v; want %v", got, want)
	}

	if !IsSorted(in, SortNone) {
		t.Fatalf("IsSorted(SortNone) = false; want true")
	}
}

func TestSortKeyCompare(t *testing.T) {
	t.Parallel()

	a := Release{Version: "1.0.0", Build: "3"}
	b := Release{Version: "2.0.0", Build: "1"}

	if c := SortBuildDesc.Compare(a, b); c >= 0 {
		t.Fatalf("build-desc Compare = %d; want negative", c)
	}
	if c := SortSemverDesc.Compare(a, b); c <= 0 {
		t.Fatalf("semver-desc Compare = %d; want positive", c)
	}
	if c := SortNone.Compare(a, b); c != 0 {
		t.Fatalf("none Compare = %d; want 0", c)
	}
}
