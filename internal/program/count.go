// internal/program/count.go
package program

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/hubslots/internal/slot"
)

// DigitCounts holds occurrences of the characters '0'..'9'.
type DigitCounts [10]int

// Total sums all digit occurrences.
func (d DigitCounts) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// CountDigits tallies digit characters across the decoded content of
// slots first..last (inclusive). Empty slots are skipped; an out-of-range
// slot aborts the count.
func (r *Reader) CountDigits(first, last slot.Slot) (DigitCounts, error) {
	var counts DigitCounts

	if first > last {
		return counts, fmt.Errorf("program: first slot %d after last slot %d", int(first), int(last))
	}

	for s := first; s <= last; s++ {
		r.log.Info().Int("slot", int(s)).Msg("processing slot")

		err := r.Lines(s, func(line string) {
			for d := 0; d < 10; d++ {
				counts[d] += strings.Count(line, string(rune('0'+d)))
			}
		})
		if err != nil {
			if errors.Is(err, slot.ErrSlotUnavailable) {
				r.log.Debug().Int("slot", int(s)).Msg("slot empty, skipped")
				continue
			}
			return counts, err
		}
	}

	return counts, nil
}
