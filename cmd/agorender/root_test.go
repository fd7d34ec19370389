package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<p>Posted <time datetime="2026-03-14T12:09:26Z">Saturday</time></p>
<p>Updated <time class="x" datetime="2026-03-14T15:09:00Z">now</time></p>
<p>Ships <span class="eta" data-at="x" datetime="2026-04-14T15:09:26Z">April</span></p>
</body></html>`

var now = time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

func writePage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o644))
	return path
}

func testOptions(stdout *bytes.Buffer) *renderOptions {
	return &renderOptions{
		interval: time.Minute,
		selector: "time",
		style:    "default",
		clock:    clockwork.NewFakeClockAt(now),
		stdout:   stdout,
		stderr:   &bytes.Buffer{},
	}
}

func TestRenderToStdout(t *testing.T) {
	input := writePage(t)
	var stdout bytes.Buffer

	require.NoError(t, runRender(context.Background(), input, testOptions(&stdout)))

	assert.Contains(t, stdout.String(), `<time datetime="2026-03-14T12:09:26Z">3 hours ago</time>`)
	assert.Contains(t, stdout.String(), `<time class="x" datetime="2026-03-14T15:09:00Z">just now</time>`)
	assert.Contains(t, stdout.String(), ">April</span>")

	original, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, page, string(original))
}

func TestRenderCustomSelectorInPlace(t *testing.T) {
	input := writePage(t)
	opts := testOptions(&bytes.Buffer{})
	opts.selector = "span.eta"
	opts.inPlace = true

	require.NoError(t, runRender(context.Background(), input, opts))

	saved, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Contains(t, string(saved), ">1 month ahead</span>")
	assert.Contains(t, string(saved), ">Saturday</time>")
}

func TestRenderRejectsBadInput(t *testing.T) {
	opts := testOptions(&bytes.Buffer{})
	opts.style = "roman"
	assert.ErrorContains(t, runRender(context.Background(), writePage(t), opts), `unknown style "roman"`)

	opts = testOptions(&bytes.Buffer{})
	opts.watch = true
	assert.ErrorContains(t, runRender(context.Background(), writePage(t), opts), "--watch needs")

	opts = testOptions(&bytes.Buffer{})
	assert.Error(t, runRender(context.Background(), filepath.Join(t.TempDir(), "missing.html"), opts))
}

func TestWatchRewritesOutputUntilCancelled(t *testing.T) {
	input := writePage(t)
	output := filepath.Join(t.TempDir(), "out.html")
	clock := clockwork.NewFakeClockAt(now)
	opts := testOptions(&bytes.Buffer{})
	opts.clock = clock
	opts.output = output
	opts.watch = true

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runRender(ctx, input, opts)
	}()

	readOutput := func() string {
		data, _ := os.ReadFile(output)
		return string(data)
	}
	assert.Eventually(t, func() bool {
		return strings.Contains(readOutput(), ">3 hours ago</time>")
	}, 2*time.Second, 10*time.Millisecond)

	clock.BlockUntil(1)
	clock.Advance(time.Hour)
	assert.Eventually(t, func() bool {
		return strings.Contains(readOutput(), ">4 hours ago</time>") &&
			strings.Contains(readOutput(), ">1 hour ago</time>")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestCommandFlags(t *testing.T) {
	cmd := newRootCommand()
	assert.Equal(t, "agorender <input.html>", cmd.Use)

	interval, err := cmd.Flags().GetDuration("interval")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, interval)

	selector, err := cmd.Flags().GetString("selector")
	require.NoError(t, err)
	assert.Equal(t, "time", selector)

	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
