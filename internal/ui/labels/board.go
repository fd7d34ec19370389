// Package labels hosts relative time labels in fyne widgets.
package labels

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"ago/internal/core/relative"
)

// NameAttribute exposes the label name to date accessors.
const NameAttribute = "name"

// Label is a fyne label bound to a fixed moment.
type Label struct {
	name   string
	at     time.Time
	widget *widget.Label
}

// NewLabel creates a label showing the time relative to at.
func NewLabel(name string, at time.Time) *Label {
	return &Label{
		name:   name,
		at:     at,
		widget: widget.NewLabel(""),
	}
}

// Attr exposes the moment as the datetime attribute.
func (label *Label) Attr(name string) (string, bool) {
	switch name {
	case relative.DateAttribute:
		return label.at.Format(time.RFC3339Nano), true
	case NameAttribute:
		return label.name, true
	}
	return "", false
}

// SetText updates the label on the fyne UI goroutine.
func (label *Label) SetText(text string) {
	fyne.Do(func() {
		label.widget.SetText(text)
	})
}

// Board is a list of named relative time labels.
type Board struct {
	mu     sync.Mutex
	labels []*Label
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Add appends a label for a named moment.
func (board *Board) Add(name string, at time.Time) *Label {
	label := NewLabel(name, at)
	board.mu.Lock()
	board.labels = append(board.labels, label)
	board.mu.Unlock()
	return label
}

// QueryAll returns every label for the time selector and nothing otherwise.
func (board *Board) QueryAll(selector string) []relative.Element {
	if selector != relative.DefaultSelector {
		return nil
	}
	board.mu.Lock()
	defer board.mu.Unlock()

	elements := make([]relative.Element, 0, len(board.labels))
	for _, label := range board.labels {
		elements = append(elements, label)
	}
	return elements
}

// Content lays out one row per label.
func (board *Board) Content() fyne.CanvasObject {
	board.mu.Lock()
	defer board.mu.Unlock()

	if len(board.labels) == 0 {
		return widget.NewLabel("No events yet. Add some in Preferences.")
	}
	rows := container.New(layout.NewFormLayout())
	for _, label := range board.labels {
		rows.Add(widget.NewLabelWithStyle(label.name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		rows.Add(label.widget)
	}
	return rows
}
