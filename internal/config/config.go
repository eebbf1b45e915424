// Package config loads the toolchain's optional .cymb.toml settings file,
// per SPEC_FULL.md §1.1.
//
// Grounded on the teacher's config/config.go: a zero-arg Default()
// constructor filling every field explicitly (Go zero values would leave
// tab width at 0 and standard at "", both invalid), Load/LoadFrom falling
// back to defaults when the file is absent, and github.com/BurntSushi/toml
// for decoding.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the toolchain-wide defaults SPEC_FULL.md §1.1 lists:
// default C standard, default tab width, whether diagnostics print in
// color, the assembler listing width, and the inspector's history size.
type Config struct {
	Standard         string `toml:"standard"`
	TabWidth         int    `toml:"tab_width"`
	ColorDiagnostics bool   `toml:"color_diagnostics"`
	ListingWidth     int    `toml:"listing_width"`
	InspectorHistory int    `toml:"inspector_history"`
}

// Default mirrors the teacher's DefaultConfig(): explicit field
// assignment, because tab width 8 and standard c23 are non-zero defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Standard = "c23"
	cfg.TabWidth = 8
	cfg.ColorDiagnostics = true
	cfg.ListingWidth = 80
	cfg.InspectorHistory = 1000
	return cfg
}

// Load reads .cymb.toml from the current directory, then from
// $CYMB_CONFIG if set, applying each over the defaults in turn. A missing
// file at either location is not an error.
func Load() (*Config, error) {
	cfg := Default()
	for _, path := range candidatePaths() {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

func candidatePaths() []string {
	paths := []string{".cymb.toml"}
	if p := os.Getenv("CYMB_CONFIG"); p != "" {
		paths = append(paths, p)
	}
	return paths
}
