// Package config loads REPL and server settings from a YAML file, with
// loose coercion of whatever values the file's author actually typed in
// (a quoted string where a number is expected, a bare number where a
// string is expected).
package config

import (
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a Citrine REPL or server session reads at
// startup. Zero values are valid defaults.
type Config struct {
	Prompt         string `yaml:"prompt"`
	HistorySize    int    `yaml:"history_size"`
	HighlightTheme string `yaml:"highlight_theme"`
	ServeAddr      string `yaml:"serve_addr"`
}

// Default returns the configuration a bare `citrine` invocation uses.
func Default() Config {
	return Config{
		Prompt:         "citrine> ",
		HistorySize:    500,
		HighlightTheme: "monokai",
		ServeAddr:      ":4747",
	}
}

// Load reads and parses a YAML config file at path, applying Default()
// for any field the file leaves out. Values that arrive as the wrong
// YAML scalar kind (a quoted "500" for history_size, say) are coerced
// rather than rejected, since a hand-edited config file is exactly where
// that kind of looseness is worth tolerating.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, err
	}

	if v, ok := doc["prompt"]; ok {
		cfg.Prompt = cast.ToString(v)
	}
	if v, ok := doc["history_size"]; ok {
		n, err := cast.ToIntE(v)
		if err != nil {
			return Config{}, err
		}
		cfg.HistorySize = n
	}
	if v, ok := doc["highlight_theme"]; ok {
		cfg.HighlightTheme = cast.ToString(v)
	}
	if v, ok := doc["serve_addr"]; ok {
		cfg.ServeAddr = cast.ToString(v)
	}

	return cfg, nil
}
