// internal/config/normalize.go
package config

import "github.com/tamzrod/hubslots/internal/program"

const (
	DefaultRoot       = "/"
	DefaultIntervalMs = 5000
	DefaultTimeoutMs  = 1000
	DefaultUnitID     = 1
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Hub.Root == "" {
		cfg.Hub.Root = DefaultRoot
	}

	if cfg.Scan.IntervalMs == 0 {
		cfg.Scan.IntervalMs = DefaultIntervalMs
	}

	if cfg.Read.Policy == "" {
		cfg.Read.Policy = string(program.PolicyLenient)
	}

	// Publish defaults only matter when publishing is on.
	if !cfg.Publish.Enabled() {
		return
	}

	if cfg.Publish.TimeoutMs == 0 {
		cfg.Publish.TimeoutMs = DefaultTimeoutMs
	}
	if cfg.Publish.UnitID == 0 {
		cfg.Publish.UnitID = DefaultUnitID
	}
}
