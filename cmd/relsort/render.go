package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/woozymasta/relsort"
	"go.yaml.in/yaml/v4"
)

// render writes releases in the given format.
func render(w io.Writer, rs []relsort.Release, format string, canonical bool) error {
	if canonical {
		rs = canonicalize(rs)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if rs == nil {
			rs = []relsort.Release{}
		}
		return enc.Encode(rs)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return err
		}
		return enc.Close()

	default:
		return writeText(w, rs)
	}
}

// writeText prints one aligned line per release: version, build, date, channel.
func writeText(w io.Writer, rs []relsort.Release) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range rs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			orDash(r.Version), orDash(r.Build.String()), orDash(r.Date), orDash(r.Channel))
	}

	return tw.Flush()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return s
}

// canonicalize returns copies with valid SemVer versions rewritten.
func canonicalize(in []relsort.Release) []relsort.Release {
	out := make([]relsort.Release, len(in))
	for i, r := range in {
		r.Version, _ = relsort.Canonical(r.Version)
		out[i] = r
	}

	return out
}
