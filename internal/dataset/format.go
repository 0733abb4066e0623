package dataset

import (
	"path/filepath"
	"strings"
)

// Format is the document syntax of a dataset.
type Format uint8

const (
	// FormatJSON is the default.
	FormatJSON Format = iota
	// FormatYAML also accepts plain JSON, which is valid YAML.
	FormatYAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}

	return "json"
}

// ParseFormat maps "json", "yaml" and "yml" to a Format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return FormatJSON, false
	}
}

// Compression is the outer encoding of a dataset file.
type Compression uint8

const (
	CompressNone Compression = iota
	CompressGzip
	CompressZstd
	CompressXz
	CompressLzip
)

// String returns the usual file extension without the dot, or "none".
func (c Compression) String() string {
	switch c {
	case CompressGzip:
		return "gz"
	case CompressZstd:
		return "zst"
	case CompressXz:
		return "xz"
	case CompressLzip:
		return "lz"
	default:
		return "none"
	}
}

// Detect infers compression and format from a file name:
// "releases.yaml.zst" is zstd-compressed YAML. Unknown names are plain JSON.
func Detect(path string) (Format, Compression) {
	name := strings.ToLower(filepath.Base(path))

	c := CompressNone
	switch filepath.Ext(name) {
	case ".gz", ".gzip":
		c = CompressGzip
	case ".zst", ".zstd":
		c = CompressZstd
	case ".xz":
		c = CompressXz
	case ".lz":
		c = CompressLzip
	}
	if c != CompressNone {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	f, _ := ParseFormat(strings.TrimPrefix(filepath.Ext(name), "."))

	return f, c
}
