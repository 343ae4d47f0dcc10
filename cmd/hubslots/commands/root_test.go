package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/hubslots/internal/flash"
	"github.com/tamzrod/hubslots/internal/poller"
	"github.com/tamzrod/hubslots/internal/scanner"
	"github.com/tamzrod/hubslots/internal/slot"
)

// withHub points the commands at an in-memory hub seeded with programs.
func withHub(t *testing.T, programs map[slot.Slot][]byte) billy.Filesystem {
	t.Helper()

	fs := flash.NewMemory()
	require.NoError(t, flash.Seed(fs, programs))

	prevFS, prevLog, prevColor := openFS, newLogger, color.NoColor
	openFS = func(string) (billy.Filesystem, error) { return fs, nil }
	newLogger = zerolog.Nop
	color.NoColor = true

	t.Cleanup(func() {
		openFS, newLogger, color.NoColor = prevFS, prevLog, prevColor
	})
	return fs
}

func run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPathCmd_Found(t *testing.T) {
	withHub(t, map[slot.Slot][]byte{7: []byte("hdr\n")})

	out, _, err := run("path", "7")
	require.NoError(t, err)
	assert.Equal(t, "/flash/program/07/program.mpy\n", out)
}

func TestPathCmd_Empty(t *testing.T) {
	withHub(t, nil)

	_, stderr, err := run("path", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, slot.ErrSlotUnavailable)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, stderr, "Slot 3 is empty")
}

func TestPathCmd_Invalid(t *testing.T) {
	withHub(t, nil)

	for _, arg := range []string{"20", "-1", "abc"} {
		_, _, err := run("path", "--", arg)
		require.Error(t, err, arg)
		assert.ErrorIs(t, err, slot.ErrInvalidSlot, arg)
		assert.Equal(t, 2, ExitCode(err), arg)
	}
}

func TestScanCmd(t *testing.T) {
	withHub(t, map[slot.Slot][]byte{
		2: []byte("__doc__\nrobot arm demo\n"),
		5: []byte("__doc__\notherword here\n"),
		9: []byte("no marker\n"),
	})

	out, _, err := run("scan")
	require.NoError(t, err)
	assert.Equal(t,
		"02  /flash/program/02/program.mpy\n05  /flash/program/05/program.mpy\n",
		out)

	out, _, err = run("scan", "--check", "robot")
	require.NoError(t, err)
	assert.Equal(t, "02  /flash/program/02/program.mpy\n", out)
}

func TestScanCmd_NothingFound(t *testing.T) {
	withHub(t, nil)

	out, stderr, err := run("scan", "-v")
	require.NoError(t, err)
	assert.Equal(t, "no matching slots\n", out)
	assert.Contains(t, stderr, "slot 0 skipped: empty")
	assert.Contains(t, stderr, "slot 19 skipped: empty")
}

func TestCatCmd(t *testing.T) {
	withHub(t, map[slot.Slot][]byte{
		0: []byte("M\x06 info\nprint('a')\n\xffprint('b')\n"),
	})

	out, _, err := run("cat")
	require.NoError(t, err)
	assert.Equal(t, "print('a')\nprint('b')\n", out)

	out, _, err = run("cat", "0", "--policy", "stop_on_binary")
	require.NoError(t, err)
	assert.Equal(t, "print('a')\n", out)
}

func TestCatCmd_EmptySlotIsNotAnError(t *testing.T) {
	withHub(t, nil)

	out, stderr, err := run("cat", "4")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "slot 4 skipped")
}

func TestCatCmd_InvalidSlot(t *testing.T) {
	withHub(t, nil)

	_, _, err := run("cat", "42")
	assert.ErrorIs(t, err, slot.ErrInvalidSlot)
}

func TestCountCmd(t *testing.T) {
	withHub(t, map[slot.Slot][]byte{
		3: []byte("hdr\nx = 10\n"),
	})

	out, _, err := run("count", "--first", "3", "--last", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "0 occurs 1 times.\n")
	assert.Contains(t, out, "1 occurs 1 times.\n")
	assert.Contains(t, out, "Total: 2\n")
}

func TestCountCmd_InvalidRange(t *testing.T) {
	withHub(t, nil)

	_, _, err := run("count", "--last", "20")
	assert.ErrorIs(t, err, slot.ErrInvalidSlot)
}

func TestConfigFlag(t *testing.T) {
	withHub(t, map[slot.Slot][]byte{
		2: []byte("__doc__\nrobot arm\n"),
		5: []byte("__doc__\nother\n"),
	})

	path := filepath.Join(t.TempDir(), "hub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan:\n  check_marker: true\n  marker_word: other\n"), 0o644))

	out, _, err := run("scan", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "05  /flash/program/05/program.mpy\n", out)
}

func TestConfigFlag_Invalid(t *testing.T) {
	withHub(t, nil)

	path := filepath.Join(t.TempDir(), "hub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hub:\n  slot: 33\n"), 0o644))

	_, stderr, err := run("scan", "--config", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "Configuration error")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("x")))
	assert.Equal(t, 2, ExitCode(fmt.Errorf("wrapped: %w", slot.ErrInvalidSlot)))
}

// ---- monitor ----

type fakeWriter struct {
	got chan poller.PollResult
}

func (f *fakeWriter) Write(res poller.PollResult) error {
	f.got <- res
	return nil
}

func TestMonitor_ForwardsResults(t *testing.T) {
	fs := withHub(t, map[slot.Slot][]byte{6: []byte("__doc__\nx\n")})

	sc, err := scanner.New(fs, zerolog.Nop())
	require.NoError(t, err)
	p, err := poller.New(poller.Config{Interval: time.Hour}, sc)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &fakeWriter{got: make(chan poller.PollResult, 1)}
	done := make(chan struct{})
	go func() {
		monitor(ctx, p, w, zerolog.Nop())
		close(done)
	}()

	select {
	case res := <-w.got:
		assert.Equal(t, []slot.Slot{6}, res.Registry.Slots())
	case <-time.After(2 * time.Second):
		t.Fatal("no result forwarded to writer")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}
}
