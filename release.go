package relsort

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Link is a labelled URL attached to a release.
type Link struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	URL   string `json:"url,omitempty"   yaml:"url,omitempty"`
}

// BuildID is a numeric-or-text build identifier.
// The empty value is the single "absent" state.
type BuildID string

// IsSet reports whether the build identifier carries any text.
func (b BuildID) IsSet() bool {
	return strings.TrimSpace(string(b)) != ""
}

// String returns the raw build text.
func (b BuildID) String() string {
	return string(b)
}

// UnmarshalJSON accepts a JSON string or number; anything else is absent.
func (b *BuildID) UnmarshalJSON(data []byte) error {
	*b = looseBuild(data)
	return nil
}

// Release is a single release record as supplied by the dataset.
// The core treats records as read-only values.
type Release struct {
	Version string   `json:"version"           yaml:"version"`
	Build   BuildID  `json:"build,omitempty"   yaml:"build,omitempty"`
	Date    string   `json:"date,omitempty"    yaml:"date,omitempty"`
	Channel string   `json:"channel,omitempty" yaml:"channel,omitempty"`
	Changes []string `json:"changes,omitempty" yaml:"changes,omitempty"`
	Links   []Link   `json:"links,omitempty"   yaml:"links,omitempty"`
	Tags    []string `json:"tags,omitempty"    yaml:"tags,omitempty"`
}

// UnmarshalJSON decodes a record leniently: wrong-typed fields become absent
// and a non-object value decodes to an empty record instead of failing.
func (r *Release) UnmarshalJSON(data []byte) error {
	*r = Release{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil
	}

	r.Version = looseText(fields["version"])
	r.Build = looseBuild(fields["build"])
	r.Date = looseText(fields["date"])
	r.Channel = looseText(fields["channel"])
	r.Changes = looseList(fields["changes"])
	r.Tags = looseList(fields["tags"])
	r.Links = looseLinks(fields["links"])

	return nil
}

// looseText renders a scalar JSON value as text.
// Strings decode as-is, numbers and booleans keep their literal form,
// null, objects and arrays are absent.
func looseText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s

	case 'n', '{', '[':
		return ""

	default: // number, true, false
		return string(raw)
	}
}

// looseBuild is looseText with fractional and exponent JSON numbers in
// shortest decimal form, so 1e3 reads and searches as "1000".
// Integer literals and strings are kept as written.
func looseBuild(raw json.RawMessage) BuildID {
	s := looseText(raw)
	raw = bytes.TrimSpace(raw)
	if s == "" || raw[0] == '"' || !strings.ContainsAny(s, ".eE") {
		return BuildID(s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return BuildID(s)
	}

	return BuildID(strconv.FormatFloat(f, 'f', -1, 64))
}

// looseList accepts an array of scalars or a single scalar.
func looseList(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	if raw[0] != '[' {
		if s := looseText(raw); s != "" {
			return []string{s}
		}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := looseText(it); s != "" {
			out = append(out, s)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// looseLinks keeps only object elements of a links array.
func looseLinks(raw json.RawMessage) []Link {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]Link, 0, len(items))
	for _, it := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(it, &obj); err != nil || obj == nil {
			continue
		}

		out = append(out, Link{
			Label: looseText(obj["label"]),
			URL:   looseText(obj["url"]),
		})
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
