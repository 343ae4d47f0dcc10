package poller

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/hubslots/internal/config"
	"github.com/tamzrod/hubslots/internal/flash"
	"github.com/tamzrod/hubslots/internal/scanner"
	"github.com/tamzrod/hubslots/internal/slot"
	"github.com/tamzrod/hubslots/internal/status"
)

type fakeInspector struct {
	calls int
	ins   []scanner.Inspection
}

func (f *fakeInspector) InspectAll(opts scanner.Options) []scanner.Inspection {
	f.calls++
	return f.ins
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Interval: time.Second}, nil)
	assert.Error(t, err)

	_, err = New(Config{}, &fakeInspector{})
	assert.Error(t, err)
}

func TestPollOnce_BuildsRegistryAndSnapshot(t *testing.T) {
	fake := &fakeInspector{ins: []scanner.Inspection{
		{Slot: 0, State: scanner.StateEmpty},
		{Slot: 1, Path: slot.Path(1), State: scanner.StateDocumented, Qualified: true},
		{Slot: 2, Path: slot.Path(2), State: scanner.StatePresent},
	}}

	p, err := New(Config{Interval: time.Second}, fake)
	require.NoError(t, err)

	res := p.PollOnce()

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, []slot.Slot{1}, res.Registry.Slots())
	assert.Equal(t, status.CodeMatched, res.Snapshot.Codes[1])
	assert.Equal(t, status.CodePresent, res.Snapshot.Codes[2])
	assert.True(t, res.Snapshot.Qualified[1])
	assert.False(t, res.At.IsZero())
}

func TestRun_EmitsImmediatelyAndStops(t *testing.T) {
	p, err := New(Config{Interval: time.Hour}, &fakeInspector{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan PollResult)
	done := make(chan struct{})

	go func() {
		p.Run(ctx, out)
		close(done)
	}()

	select {
	case <-out:
	case <-time.After(2 * time.Second):
		t.Fatal("expected first poll result without waiting for the interval")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestBuild_FromConfig(t *testing.T) {
	fs := flash.NewMemory()
	require.NoError(t, flash.Seed(fs, map[slot.Slot][]byte{
		4: []byte("__doc__\nrobot demo\n"),
		6: []byte("__doc__\nother\n"),
	}))

	c := &config.Config{Scan: config.ScanConfig{CheckMarker: true, MarkerWord: "robot"}}
	require.NoError(t, config.Validate(c))
	config.Normalize(c)

	p, err := Build(c, fs, zerolog.Nop())
	require.NoError(t, err)

	res := p.PollOnce()
	assert.Equal(t, []slot.Slot{4}, res.Registry.Slots())
	assert.Equal(t, status.CodeDocumented, res.Snapshot.Codes[6])
	assert.Len(t, res.Inspections, slot.Count)
}
