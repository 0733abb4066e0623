package relsort

import "strings"

// * raw prefilter (cheap, string-only)

// preFilterRaw applies Channel / Include / Exclude to the raw record fields.
func preFilterRaw(in []Release, opt Options) []Release {
	if opt.Channel == "" && opt.Include == nil && opt.Exclude == nil {
		return in
	}

	out := make([]Release, 0, len(in))
	for i := range in {
		r := &in[i]

		// channel gate
		if opt.Channel != "" && !strings.EqualFold(strings.TrimSpace(r.Channel), strings.TrimSpace(opt.Channel)) {
			continue
		}

		// regex gates
		if opt.Include != nil && !opt.Include.MatchString(r.Version) {
			continue
		}

		if opt.Exclude != nil && opt.Exclude.MatchString(r.Version) {
			continue
		}

		out = append(out, *r)
	}

	return out
}

// * version gating

// gateVersions applies Range and Constraint, both of which need SemVer.
func gateVersions(in []Release, opt Options) []Release {
	if opt.Range.Enabled() && len(in) > 0 {
		in = clipRange(in, opt.Range)
	}

	if c := compileConstraint(opt.Constraint); c != nil && len(in) > 0 {
		in = applyConstraint(in, c)
	}

	return in
}

// narrow runs every filtering step of Select, in order, without sorting.
func narrow(in []Release, opt Options) []Release {
	out := preFilterRaw(in, opt)
	out = Filter(out, opt.Query)

	return gateVersions(out, opt)
}
