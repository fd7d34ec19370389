package preferences

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"ago/internal/core/relative"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	interval *widget.Entry
	style    *widget.Select
	events   *widget.Entry
	status   *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Ago Settings")

	interval := widget.NewEntry()
	style := widget.NewSelect([]string{relative.StyleDefault, relative.StyleGrouped}, nil)
	events := widget.NewMultiLineEntry()
	events.SetPlaceHolder("Release = 2026-10-01T12:00:00Z")
	events.SetMinRowsVisible(8)
	status := widget.NewLabel("")

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Refresh every"), interval, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Number style"), style),
		widget.NewLabelWithStyle("Events", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		events,
		status,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(460, 420))

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		interval: interval,
		style:    style,
		events:   events,
		status:   status,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.interval.SetText(strconv.Itoa(int(settings.Interval / time.Second)))
	style := settings.Style
	if style == "" {
		style = relative.StyleDefault
	}
	prefs.style.SetSelected(style)
	prefs.events.SetText(FormatEvents(settings.Events))
	prefs.status.SetText("")
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if seconds, ok := parsePositiveInt(prefs.interval.Text); ok {
		settings.Interval = time.Duration(seconds) * time.Second
	}
	if prefs.style.Selected != "" {
		settings.Style = prefs.style.Selected
	}
	events, err := ParseEvents(prefs.events.Text)
	if err != nil {
		prefs.status.SetText(err.Error())
		return
	}
	settings.Events = events

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
