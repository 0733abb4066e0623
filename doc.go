/*
Package relsort orders and filters lists of software release records.

The package is I/O-agnostic: it operates on a slice of Release values that
was fetched and decoded elsewhere. Typical flow:

 1. Decode records elsewhere (e.g., with the dataset package of the CLI).
 2. Call PickDefaultSort once per dataset, or take a key from ParseSortKey.
 3. Call Apply (query + sort) or Select (full Options) to get the view.

Sort keys:
  - build-desc / build-asc: build number, ties by date then version.
  - semver-desc / semver-asc: version, ties by date.
  - date-desc / date-asc: date, ties by build.

Leniency:
  - Versions parse as [v]MAJOR.MINOR.PATCH[-PRERELEASE]; missing or
    non-numeric parts are 0, so every string has a place in the order.
  - Missing or unparseable builds and dates sort lowest (first ascending,
    last descending).
  - Pre-release tags compare as plain text: "rc.10" < "rc.9".

Session state:
  - Store keeps the dataset, query and sort key as one immutable State,
    replaced on every change, so a view always matches its inputs.

Usage example:

	releases := []relsort.Release{
		{Version: "1.2.0", Build: "41", Date: "2024-03-01"},
		{Version: "1.3.0-beta", Build: "42", Date: "2024-04-01", Changes: []string{"Beta fix"}},
		{Version: "1.1.9", Date: "2024-01-10"},
	}

	key := relsort.PickDefaultSort(releases) // build-desc: builds are numeric
	view := relsort.Apply(releases, "beta", key)

	fmt.Println(view[0].Version) // 1.3.0-beta
*/
package relsort
