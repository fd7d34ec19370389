package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	manager := New(nil, "Ago", Callbacks{})
	assert.Equal(t, "Status: starting...", manager.statusItem.Label)

	manager.SetStatus("updated 12:00:10")
	assert.Equal(t, "Status: updated 12:00:10", manager.statusItem.Label)

	manager.SetPaused(true)
	assert.Equal(t, "Status: updated 12:00:10 (paused)", manager.statusItem.Label)
	assert.Equal(t, "Resume", manager.pauseItem.Label)

	manager.SetPaused(false)
	assert.Equal(t, "Pause", manager.pauseItem.Label)
}

func TestMenuInvokesCallbacks(t *testing.T) {
	var calls []string
	manager := New(nil, "Ago", Callbacks{
		OnRefresh:     func() { calls = append(calls, "refresh") },
		OnTogglePause: func() { calls = append(calls, "pause") },
		OnQuit:        func() { calls = append(calls, "quit") },
	})

	menu := manager.Menu()
	assert.Equal(t, "Ago", menu.Label)

	byLabel := map[string]func(){}
	for _, item := range menu.Items {
		if item.Action != nil {
			byLabel[item.Label] = item.Action
		}
	}

	byLabel["Refresh now"]()
	byLabel["Pause"]()
	byLabel["Preferences"]()
	byLabel["Quit"]()

	assert.Equal(t, []string{"refresh", "pause", "quit"}, calls)
}
