package relsort

import "testing"

func TestToTok(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":           "",
		"  Beta  ":   "beta",
		"DATE-ASC":   "date-asc",
		"\tmixed Up": "mixed up",
	}

	for in, want := range cases {
		if got := toTok(in); got != want {
			t.Fatalf("toTok(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestCapReleases(t *testing.T) {
	t.Parallel()

	in := releasesOf("a", "b", "c")

	cases := map[int]int{-1: 3, 0: 3, 1: 1, 2: 2, 3: 3, 10: 3}
	for limit, want := range cases {
		if got := len(capReleases(in, limit)); got != want {
			t.Fatalf("capReleases(limit=%d) has %d items; want %d", limit, got, want)
		}
	}
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1.2.3", "v1.2.3", true},
		{"v1.2.3-rc.1+build.5", "v1.2.3-rc.1", true},
		{"nightly", "nightly", false},
	}

	for _, tc := range cases {
		got, ok := Canonical(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Canonical(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
