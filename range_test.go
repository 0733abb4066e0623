package relsort

import (
	"reflect"
	"testing"
)

func releasesOf(vs ...string) []Release {
	out := make([]Release, len(vs))
	for i, v := range vs {
		out[i] = Release{Version: v}
	}
	return out
}

func TestRange_Min_Shorthand_NoPreAtFloor(t *testing.T) {
	t.Parallel()

	in := releasesOf("1.2.0-alpha", "1.2.0", "1.1.9", "1.3.0")
	opt := Options{Range: Range{
		Min: "1.2", // floor = 1.2.0 (inclusive), so 1.2.0-alpha is excluded
	}}

	got := versions(Select(in, opt))
	want := []string{"1.2.0", "1.3.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Min shorthand (no pre at floor): got %v; want %v", got, want)
	}
}

func TestRange_Min_Shorthand_IncludePreAtFloor(t *testing.T) {
	t.Parallel()

	in := releasesOf("1.2.0-alpha", "1.2.0", "1.1.9", "1.3.0")
	opt := Options{Range: Range{
		Min:               "1.2",
		IncludePrerelease: true, // floor = 1.2.0-0 (inclusive), so alpha is included
	}}

	got := versions(Select(in, opt))
	want := []string{"1.2.0-alpha", "1.2.0", "1.3.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Min shorthand (+pre at floor): got %v; want %v", got, want)
	}
}

func TestRange_Min_Exclusive(t *testing.T) {
	t.Parallel()

	in := releasesOf("1.2.3", "1.2.4", "1.2.2")
	opt := Options{Range: Range{Min: "1.2.3", MinExclusive: true}}

	got := versions(Select(in, opt))
	if want := []string{"1.2.4"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Min exclusive: got %v; want %v", got, want)
	}
}

func TestRange_Max_Shorthand_Inclusive(t *testing.T) {
	t.Parallel()

	in := releasesOf("1.1.0", "1.2.5", "1.3.0", "2.0.0")
	opt := Options{Range: Range{Max: "1.2"}} // < 1.3.0-0

	got := versions(Select(in, opt))
	if want := []string{"1.1.0", "1.2.5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Max shorthand inclusive: got %v; want %v", got, want)
	}
}

func TestRange_Max_Full_Inclusive_Exclusive(t *testing.T) {
	t.Parallel()

	in := releasesOf("1.2.2", "1.2.3", "1.2.4")

	got := versions(Select(in, Options{Range: Range{Max: "1.2.3"}}))
	if want := []string{"1.2.2", "1.2.3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Max inclusive: got %v; want %v", got, want)
	}

	got = versions(Select(in, Options{Range: Range{Max: "1.2.3", MaxExclusive: true}}))
	if want := []string{"1.2.2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Max exclusive: got %v; want %v", got, want)
	}
}

func TestRange_DropsNonSemverOnlyWhenEnabled(t *testing.T) {
	t.Parallel()

	in := releasesOf("nightly", "v1.5.0", "1.0.0")

	got := versions(Select(in, Options{Range: Range{Min: "1"}}))
	if want := []string{"v1.5.0", "1.0.0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("with range: got %v; want %v", got, want)
	}

	if got := Select(in, Options{}); len(got) != 3 {
		t.Fatalf("without range kept %d records; want 3", len(got))
	}
}

func TestRange_InvalidBoundIgnored(t *testing.T) {
	t.Parallel()

	in := releasesOf("1.0.0", "2.0.0")

	got := versions(Select(in, Options{Range: Range{Min: "not-a-version"}}))
	if want := []string{"1.0.0", "2.0.0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("invalid bound: got %v; want %v", got, want)
	}
}
