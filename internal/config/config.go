// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Hub     HubConfig     `yaml:"hub"`
	Scan    ScanConfig    `yaml:"scan"`
	Read    ReadConfig    `yaml:"read"`
	Publish PublishConfig `yaml:"publish"`
}

// ---- HUB ----

type HubConfig struct {
	Root string `yaml:"root"` // host directory slot paths resolve under
	Slot int    `yaml:"slot"` // default slot for single-slot reads
}

// ---- SCAN ----

type ScanConfig struct {
	CheckMarker bool   `yaml:"check_marker"`
	MarkerWord  string `yaml:"marker_word"`
	IntervalMs  int    `yaml:"interval_ms"` // monitor only
}

// ---- READ ----

type ReadConfig struct {
	Policy string `yaml:"policy"` // lenient | stop_on_binary
}

// ---- PUBLISH (optional) ----

type PublishConfig struct {
	Endpoint        string `yaml:"endpoint"` // empty disables publishing
	UnitID          uint8  `yaml:"unit_id"`
	TimeoutMs       int    `yaml:"timeout_ms"`
	CoilAddress     uint16 `yaml:"coil_address"`
	RegisterAddress uint16 `yaml:"register_address"`
}

// Enabled reports whether the inventory should be published.
func (p PublishConfig) Enabled() bool {
	return p.Endpoint != ""
}

// Load reads a YAML config file. Unknown keys are rejected.
// It does not validate or normalize.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML config bytes. An empty document yields a zero Config.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Default returns a validated, normalized config with no file behind it.
func Default() *Config {
	cfg := &Config{}
	Normalize(cfg)
	return cfg
}
