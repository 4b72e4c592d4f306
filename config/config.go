// Package config loads the driver-suppliable knobs a Compiler accepts
// (spec §6 "External interfaces": "the driver may optionally supply...").
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries everything a driver may tune before calling
// Compiler.Compile. The zero Config is valid and selects every default the
// core itself would otherwise pick.
type Config struct {
	// MaxErrors bounds how many error-level diagnostics a unit's reporter
	// accepts before dropping the rest (spec §4.C8 "Stop accepting new
	// errors after a configured maximum"). Zero selects
	// reporter.DefaultMaxErrors.
	MaxErrors int `yaml:"max_errors"`

	// AllowIncompleteParse lets the parser recover past structural errors
	// and keep producing a partial AST instead of aborting at the first
	// one, threaded straight through to parser.Config.AllowIncompleteParse.
	AllowIncompleteParse bool `yaml:"allow_incomplete_parse"`

	// ModuleAliases pre-populates the process-wide module-alias registry
	// (spec §4.C6 "Module aliases") before any unit is compiled, so a
	// driver can wire up aliases a build system already resolved rather
	// than making the core rediscover them.
	ModuleAliases map[string]string `yaml:"module_aliases"`
}

// Load reads and parses a YAML-encoded Config from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return &cfg, nil
}
