package labels

import (
	"io"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ago/internal/core/relative"
)

var now = time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

func TestLabelAttributes(t *testing.T) {
	label := NewLabel("Release", now)

	value, ok := label.Attr(relative.DateAttribute)
	assert.True(t, ok)
	parsed, err := relative.ParseTimestamp(value)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(now))

	name, ok := label.Attr(NameAttribute)
	assert.True(t, ok)
	assert.Equal(t, "Release", name)

	_, ok = label.Attr("class")
	assert.False(t, ok)
}

func TestBoardRendersThroughFormatter(t *testing.T) {
	test.NewTempApp(t)

	board := NewBoard()
	past := board.Add("Deploy", now.Add(-3*time.Hour))
	future := board.Add("Launch", now.Add(8*24*time.Hour))

	assert.Empty(t, board.QueryAll(".other"))
	require.Len(t, board.QueryAll(relative.DefaultSelector), 2)

	formatter := relative.WithConfig(board, relative.Config{},
		relative.WithClock(clockwork.NewFakeClockAt(now)),
		relative.WithLogger(log.New(io.Discard)))
	require.NoError(t, formatter.RenderAll())

	assert.Eventually(t, func() bool {
		return past.widget.Text == "3 hours ago" && future.widget.Text == "1 week ahead"
	}, time.Second, 10*time.Millisecond)
}

func TestBoardContent(t *testing.T) {
	test.NewTempApp(t)

	empty := NewBoard().Content()
	assert.NotNil(t, empty)

	board := NewBoard()
	board.Add("Deploy", now)
	board.Add("Launch", now)
	rows, ok := board.Content().(*fyne.Container)
	require.True(t, ok)
	assert.Len(t, rows.Objects, 4)
}
