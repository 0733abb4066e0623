package relsort

// PickDefaultSort chooses a comparator for a freshly loaded dataset:
//
//  1. build-desc when any record has a numeric build;
//  2. semver-desc when every version has the X.Y.Z[-pre] shape
//     (an empty dataset qualifies);
//  3. date-desc otherwise.
func PickDefaultSort(in []Release) SortKey {
	for i := range in {
		if hasNumericBuild(in[i].Build) {
			return SortBuildDesc
		}
	}

	for i := range in {
		if !LooksLikeSemver(in[i].Version) {
			return SortDateDesc
		}
	}

	return SortSemverDesc
}
