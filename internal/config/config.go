// Package config manages relsort defaults stored in a TOML file.
// Command-line flags override every value read here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/woozymasta/relsort"
)

// EnvConfig names the config file when --config is not given.
const EnvConfig = "RELSORT_CONFIG"

// ErrInvalid is returned by Set for unknown keys and bad values.
var ErrInvalid = errors.New("invalid config value")

// Config holds user defaults.
type Config struct {
	// Sort is a registry name; empty lets the dataset pick its default.
	Sort string `toml:"sort"`

	// Output is "text", "json" or "yaml".
	Output string `toml:"output"`

	// Channel keeps only releases on this channel.
	Channel string `toml:"channel"`

	// Limit caps the number of printed releases; 0 is unlimited.
	Limit int `toml:"limit"`

	// Canonical prints SemVer versions as vMAJOR.MINOR.PATCH[-PRE].
	Canonical bool `toml:"canonical"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: "text",
	}
}

// Path resolves the config file: explicit path, then $RELSORT_CONFIG,
// then <user config dir>/relsort/config.toml. Empty when none can be found.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "relsort", "config.toml")
}

// Load reads the config file at path.
// A missing file (or empty path) yields defaults; parse errors are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the value of a config key as a string.
func (c *Config) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "sort":
		return c.Sort, true
	case "output":
		return c.Output, true
	case "channel":
		return c.Channel, true
	case "limit":
		return strconv.Itoa(c.Limit), true
	case "canonical":
		return strconv.FormatBool(c.Canonical), true
	default:
		return "", false
	}
}

// Set updates a config value from a string.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "sort":
		if value != "" {
			if _, ok := relsort.ParseSortKey(value); !ok {
				return fmt.Errorf("%w: unknown sort key %q", ErrInvalid, value)
			}
		}
		c.Sort = value

	case "output":
		if !validOutput(value) {
			return fmt.Errorf("%w: output must be text, json or yaml", ErrInvalid)
		}
		c.Output = value

	case "channel":
		c.Channel = value

	case "limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: limit must be a non-negative integer", ErrInvalid)
		}
		c.Limit = n

	case "canonical":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: canonical must be true or false", ErrInvalid)
		}
		c.Canonical = b

	default:
		return fmt.Errorf("%w: unknown config key: %s", ErrInvalid, key)
	}

	return nil
}

// AvailableKeys returns all configurable keys with descriptions, sorted by key.
func AvailableKeys() []string {
	keys := map[string]string{
		"sort":      "Default sort key (build-desc, semver-desc, date-desc, ...)",
		"output":    "Output format (text/json/yaml)",
		"channel":   "Only show releases on this channel",
		"limit":     "Maximum number of releases printed (0 = unlimited)",
		"canonical": "Print canonical vMAJOR.MINOR.PATCH versions (true/false)",
	}

	out := make([]string, 0, len(keys))
	for k, d := range keys {
		out = append(out, k+"\t"+d)
	}
	sort.Strings(out)

	return out
}

func (c *Config) validate() error {
	if c.Sort != "" {
		if _, ok := relsort.ParseSortKey(c.Sort); !ok {
			return fmt.Errorf("%w: unknown sort key %q", ErrInvalid, c.Sort)
		}
	}

	if !validOutput(c.Output) {
		return fmt.Errorf("%w: output must be text, json or yaml", ErrInvalid)
	}

	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must be a non-negative integer", ErrInvalid)
	}

	return nil
}

func validOutput(s string) bool {
	switch s {
	case "text", "json", "yaml":
		return true
	default:
		return false
	}
}
