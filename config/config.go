package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds run defaults for the checksum tool.
type Config struct {
	// Algorithm is the default selector name.
	Algorithm string

	// Depth is the default directory search depth.
	Depth int

	// Concat switches to a single concatenated digest.
	Concat bool

	// Format is the default output row template. Empty
	// keeps the tool's automatic rendering.
	Format string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Algorithm: "sha256",
		Depth:     1,
	}
}

// Load reads a YAML file and overlays its fields on the
// built-in defaults. Absent fields keep their defaults.
func Load(path string) (Config, error) {
	const errCtx = "loading config"

	content, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return Config{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	// Pointer fields distinguish "absent" from zero
	// values.
	var raw struct {
		Algorithm *string `yaml:"algorithm"`
		Depth     *int    `yaml:"depth"`
		Concat    *bool   `yaml:"concat"`
		Format    *string `yaml:"format"`
	}

	if err := yaml.Unmarshal(content, &raw); err != nil {
		return Config{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	cfg := Default()

	if raw.Algorithm != nil {
		cfg.Algorithm = *raw.Algorithm
	}

	if raw.Depth != nil {
		cfg.Depth = *raw.Depth
	}

	if raw.Concat != nil {
		cfg.Concat = *raw.Concat
	}

	if raw.Format != nil {
		cfg.Format = *raw.Format
	}

	return cfg, nil
}
