package relsort

import "testing"

func TestPickDefaultSort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []Release
		want SortKey
	}{
		{
			name: "one numeric build is enough",
			in: []Release{
				{Version: "nightly", Build: "abc"},
				{Version: "nightly", Build: "12"},
			},
			want: SortBuildDesc,
		},
		{
			name: "non-numeric builds, semver versions",
			in: []Release{
				{Version: "1.2.3", Build: "abc"},
				{Version: "v2.0.0-rc.1", Build: "def"},
				{Version: "V0.1.0"},
			},
			want: SortSemverDesc,
		},
		{
			name: "no builds, one non-semver version",
			in: []Release{
				{Version: "1.2.3", Date: "2024-01-01"},
				{Version: "nightly", Date: "2024-02-01"},
			},
			want: SortDateDesc,
		},
		{
			name: "shorthand versions are not semver shaped",
			in:   []Release{{Version: "1.2"}},
			want: SortDateDesc,
		},
		{
			name: "empty dataset",
			in:   nil,
			want: SortSemverDesc,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := PickDefaultSort(tc.in); got != tc.want {
				t.Fatalf("PickDefaultSort() = %v; want %v", got, tc.want)
			}
		})
	}
}
