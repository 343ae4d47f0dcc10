// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/tamzrod/hubslots/internal/program"
	"github.com/tamzrod/hubslots/internal/slot"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	// ------------------------------------------------------------
	// HUB
	// ------------------------------------------------------------

	if !slot.Slot(cfg.Hub.Slot).Valid() {
		return fmt.Errorf("hub.slot %d: %w", cfg.Hub.Slot, slot.ErrInvalidSlot)
	}

	// ------------------------------------------------------------
	// SCAN
	// ------------------------------------------------------------

	if cfg.Scan.IntervalMs < 0 {
		return fmt.Errorf("scan.interval_ms must be >= 0, got %d", cfg.Scan.IntervalMs)
	}

	// The filter compares a single token; a word with whitespace can never match.
	if strings.IndexFunc(cfg.Scan.MarkerWord, unicode.IsSpace) >= 0 {
		return fmt.Errorf("scan.marker_word %q must be a single word", cfg.Scan.MarkerWord)
	}

	if cfg.Scan.CheckMarker && cfg.Scan.MarkerWord == "" {
		return errors.New("scan.check_marker is set but scan.marker_word is empty")
	}

	// ------------------------------------------------------------
	// READ
	// ------------------------------------------------------------

	if _, err := program.ParsePolicy(cfg.Read.Policy); err != nil {
		return fmt.Errorf("read.policy: %w", err)
	}

	// ------------------------------------------------------------
	// PUBLISH (OPT-IN)
	// ------------------------------------------------------------

	p := cfg.Publish
	if !p.Enabled() {
		return nil
	}

	if !strings.Contains(p.Endpoint, ":") {
		return fmt.Errorf("publish.endpoint %q must be host:port", p.Endpoint)
	}

	if p.TimeoutMs < 0 {
		return fmt.Errorf("publish.timeout_ms must be >= 0, got %d", p.TimeoutMs)
	}

	// One coil and one register per slot must fit in the 16-bit address space.
	const maxStart = 0xFFFF - slot.Count + 1
	if int(p.CoilAddress) > maxStart {
		return fmt.Errorf("publish.coil_address %d: block of %d coils overflows", p.CoilAddress, slot.Count)
	}
	if int(p.RegisterAddress) > maxStart {
		return fmt.Errorf("publish.register_address %d: block of %d registers overflows", p.RegisterAddress, slot.Count)
	}

	return nil
}
