package preferences

import (
	"slices"
	"time"

	"ago/internal/core/model"
	"ago/internal/core/relative"
)

// Event is a named moment whose relative time is shown.
type Event struct {
	Name string
	At   time.Time
}

// Settings defines editable user preferences.
type Settings struct {
	Interval time.Duration
	Style    string
	Units    []model.Unit
	Events   []Event
}

// DefaultSettings returns default settings for the tray.
func DefaultSettings() Settings {
	return Settings{
		Interval: relative.DefaultInterval,
		Style:    relative.StyleDefault,
	}
}

// FormatterConfig converts settings to a relative.Config. Unset fields are
// left zero so the formatter applies its own defaults.
func (settings Settings) FormatterConfig() relative.Config {
	return relative.Config{
		Interval: settings.Interval,
		Units:    slices.Clone(settings.Units),
		Format:   relative.FormatByName(settings.Style),
	}
}
