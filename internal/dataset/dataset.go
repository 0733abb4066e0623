// Package dataset reads release datasets for the relsort CLI.
//
// A dataset is JSON or YAML shaped either as a top-level array of records or
// as an object with a "releases" array. Any other well-formed document is an
// empty dataset. Files may be compressed with gzip, zstd, xz or lzip.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/woozymasta/relsort"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrLoad marks every acquisition failure: open, decompress, read or decode.
var ErrLoad = errors.New("failed to load dataset")

// Decode reads one document from r in format f.
// A leading byte order mark (UTF-8 or UTF-16) is honored.
func Decode(r io.Reader, f Format) ([]relsort.Release, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrLoad, err)
	}

	switch f {
	case FormatYAML:
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

// decodeJSON accepts [...] or {"releases": [...]}.
func decodeJSON(data []byte) ([]relsort.Release, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if !json.Valid(data) {
		// re-decode for a positioned syntax error
		var v any
		err := json.Unmarshal(data, &v)
		return nil, fmt.Errorf("%w: decode json: %w", ErrLoad, err)
	}

	switch data[0] {
	case '[':
		return decodeList(data)

	case '{':
		var doc struct {
			Releases json.RawMessage `json:"releases"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: decode json: %w", ErrLoad, err)
		}

		rel := bytes.TrimSpace(doc.Releases)
		if len(rel) == 0 || rel[0] != '[' {
			return nil, nil
		}

		return decodeList(rel)

	default:
		return nil, nil
	}
}

func decodeList(data []byte) ([]relsort.Release, error) {
	var out []relsort.Release
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrLoad, err)
	}

	return out, nil
}

// decodeYAML converts the document to JSON so both formats share the
// lenient record decoding. It walks the node tree instead of decoding into
// Go values, so scalars keep their source text: "1.10" stays "1.10" and
// ".inf" reaches the record decoder as text.
func decodeYAML(data []byte) ([]relsort.Release, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %w", ErrLoad, err)
	}

	js, err := json.Marshal(newNodeWalker().value(&doc))
	if err != nil {
		return nil, fmt.Errorf("%w: convert yaml: %w", ErrLoad, err)
	}

	return decodeJSON(js)
}

// nodeWalker maps YAML nodes to values encoding/json can always marshal:
// maps, slices, strings, json.Number and nil.
type nodeWalker struct {
	// aliases being expanded; an alias inside its own anchor is null
	active map[*yaml.Node]bool
}

func newNodeWalker() *nodeWalker {
	return &nodeWalker{active: make(map[*yaml.Node]bool)}
}

func (w *nodeWalker) value(n *yaml.Node) any {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return w.value(n.Content[0])

	case yaml.AliasNode:
		if n.Alias == nil || w.active[n.Alias] {
			return nil
		}
		w.active[n.Alias] = true
		defer delete(w.active, n.Alias)
		return w.value(n.Alias)

	case yaml.SequenceNode:
		out := make([]any, len(n.Content))
		for i, c := range n.Content {
			out[i] = w.value(c)
		}
		return out

	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		// merged keys first so explicit keys win
		for i := 0; i+1 < len(n.Content); i += 2 {
			if isMergeKey(n.Content[i]) {
				w.merge(out, n.Content[i+1])
			}
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			if k := n.Content[i]; !isMergeKey(k) {
				out[k.Value] = w.value(n.Content[i+1])
			}
		}
		return out

	case yaml.ScalarNode:
		return scalarValue(n)

	default:
		return nil
	}
}

// merge copies the keys of a "<<" value: a mapping, an alias to one, or a
// sequence of those.
func (w *nodeWalker) merge(out map[string]any, n *yaml.Node) {
	switch v := w.value(n).(type) {
	case map[string]any:
		for k, x := range v {
			out[k] = x
		}

	case []any:
		for _, x := range v {
			if m, ok := x.(map[string]any); ok {
				for k, y := range m {
					out[k] = y
				}
			}
		}
	}
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && (n.Tag == "" || n.ShortTag() == "!!merge")
}

// scalarValue keeps the source text of a scalar. Numbers that are also valid
// JSON numbers stay numbers so they decode like their JSON counterparts;
// null is nil.
func scalarValue(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil

	case "!!int", "!!float":
		if isJSONNumber(n.Value) {
			return json.Number(n.Value)
		}
	}

	return n.Value
}

// isJSONNumber rejects YAML-only number forms such as 0x1F, +1, .inf and .nan.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}

	return json.Valid([]byte(s))
}
