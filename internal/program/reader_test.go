package program

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/hubslots/internal/flash"
	"github.com/tamzrod/hubslots/internal/slot"
)

func newReader(t *testing.T, policy Policy, programs map[slot.Slot][]byte) *Reader {
	t.Helper()
	fs := flash.NewMemory()
	require.NoError(t, flash.Seed(fs, programs))
	r, err := NewReader(fs, policy, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func collect(t *testing.T, r *Reader, s slot.Slot) ([]string, error) {
	t.Helper()
	var lines []string
	err := r.Lines(s, func(line string) { lines = append(lines, line) })
	return lines, err
}

func TestLines_SkipsHeaderAndTrims(t *testing.T) {
	r := newReader(t, PolicyLenient, map[slot.Slot][]byte{
		0: []byte("M\x06 file info\nfirst line  \r\n\tsecond\nlast"),
	})

	lines, err := collect(t, r, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"first line", "\tsecond", "last"}, lines)
}

func TestLines_LenientDropsBinary(t *testing.T) {
	r := newReader(t, PolicyLenient, map[slot.Slot][]byte{
		1: []byte("hdr\nok\n\xff\xfebin\xc3ary\nafter\n"),
	})

	lines, err := collect(t, r, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok", "binary", "after"}, lines)
}

func TestLines_StopOnBinary(t *testing.T) {
	r := newReader(t, PolicyStopOnBinary, map[slot.Slot][]byte{
		1: []byte("hdr\nok\n\xff\xfebinary\nafter\n"),
	})

	lines, err := collect(t, r, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, lines)
}

func TestLines_HeaderOnly(t *testing.T) {
	r := newReader(t, PolicyLenient, map[slot.Slot][]byte{
		2: []byte("hdr"),
		3: {},
	})

	lines, err := collect(t, r, 2)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = collect(t, r, 3)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLines_ErrorKinds(t *testing.T) {
	r := newReader(t, PolicyLenient, nil)

	_, err := collect(t, r, 4)
	assert.ErrorIs(t, err, slot.ErrSlotUnavailable)

	_, err = collect(t, r, 20)
	assert.ErrorIs(t, err, slot.ErrInvalidSlot)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyLenient, p)

	p, err = ParsePolicy("stop_on_binary")
	require.NoError(t, err)
	assert.Equal(t, PolicyStopOnBinary, p)

	_, err = ParsePolicy("strict")
	assert.Error(t, err)
}

func TestNewReader_RejectsUnknownPolicy(t *testing.T) {
	_, err := NewReader(flash.NewMemory(), Policy("bogus"), zerolog.Nop())
	assert.Error(t, err)
}

func TestCountDigits(t *testing.T) {
	r := newReader(t, PolicyLenient, map[slot.Slot][]byte{
		3: []byte("hdr 999\nx = 10\ny = 2001\n"),
		5: []byte("hdr\n\xff1\xfe7\n"),
		// slot 4 empty: skipped
	})

	counts, err := r.CountDigits(3, 12)
	require.NoError(t, err)

	assert.Equal(t, 3, counts[0])
	assert.Equal(t, 3, counts[1])
	assert.Equal(t, 1, counts[2])
	assert.Equal(t, 1, counts[7])
	assert.Zero(t, counts[9], "header line is not counted")
	assert.Equal(t, 8, counts.Total())
}

func TestCountDigits_InvalidRange(t *testing.T) {
	r := newReader(t, PolicyLenient, nil)

	_, err := r.CountDigits(15, 24)
	assert.ErrorIs(t, err, slot.ErrInvalidSlot)

	_, err = r.CountDigits(5, 2)
	assert.Error(t, err)
}
