package main

import (
	"context"
	"os"
	"path/filepath"

	"ago/internal/core/relative"
	"ago/internal/logging"
	"ago/internal/platform"
	"ago/internal/storage"
	"ago/internal/ui/labels"
	"ago/internal/ui/preferences"
	"ago/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/charmbracelet/log"
)

const appName = "AgoTray"

func main() {
	logger := logging.Install(logging.New(os.Stderr, os.Getenv("AGO_DEBUG") != ""))

	configPath, err := storage.ResolveConfigPath(appName)
	if err != nil {
		logger.Error("resolve config path", "error", err)
		return
	}
	guard, err := platform.AcquireSingleInstance(filepath.Dir(configPath), appName)
	if err != nil {
		logger.Error("single instance", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()
	logger.Debug("holding instance lock", "path", guard.Path())

	settings, err := storage.LoadSettingsFile(configPath)
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}

	fyneApp := app.NewWithID("com.ago.tray")
	fyneApp.SetIcon(theme.HistoryIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		logger.Error("system tray unsupported on this platform")
		return
	}

	mainWindow := fyneApp.NewWindow("Ago")
	mainWindow.SetCloseIntercept(func() {
		mainWindow.Hide()
	})
	mainWindow.Resize(fyne.NewSize(360, 200))

	session := &session{window: mainWindow, logger: logger}

	var trayManager *tray.Manager
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettingsFile(configPath, updated); err != nil {
			logger.Error("save settings", "error", err)
		}
		settings = updated
		session.start(settings, trayManager)
	})

	trayManager = tray.New(desktopApp, "Ago", tray.Callbacks{
		OnShow: func() {
			mainWindow.Show()
			mainWindow.RequestFocus()
		},
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnRefresh: func() {
			session.refresh()
		},
		OnTogglePause: func() {
			paused := session.togglePause()
			if paused {
				desktopApp.SetSystemTrayIcon(theme.MediaPauseIcon())
			} else {
				desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
			}
			trayManager.SetPaused(paused)
		},
		OnQuit: func() {
			session.stop()
			fyneApp.Quit()
		},
	})
	desktopApp.SetSystemTrayIcon(theme.HistoryIcon())

	session.start(settings, trayManager)
	if len(settings.Events) == 0 {
		prefsWindow.Show()
	} else {
		mainWindow.Show()
	}
	fyneApp.Run()
}

// session owns the formatter for the events currently on screen.
type session struct {
	window    fyne.Window
	logger    *log.Logger
	formatter *relative.Formatter
	paused    bool
}

func (session *session) start(settings preferences.Settings, trayManager *tray.Manager) {
	session.stop()

	board := labels.NewBoard()
	for _, event := range settings.Events {
		board.Add(event.Name, event.At)
	}
	session.window.SetContent(board.Content())

	formatter := relative.WithConfig(board, settings.FormatterConfig(), relative.WithLogger(session.logger))
	events := formatter.Subscribe(5)
	go func() {
		for event := range events {
			handleEvent(event, trayManager)
		}
	}()

	formatter.Start(context.Background())
	session.formatter = formatter
	session.paused = false
	trayManager.SetPaused(false)
}

func (session *session) refresh() {
	if session.formatter == nil {
		return
	}
	if err := session.formatter.RenderAll(); err != nil {
		session.logger.Error("refresh", "error", err)
	}
}

func (session *session) togglePause() bool {
	if session.formatter == nil {
		return session.paused
	}
	if session.paused {
		session.formatter.Resume()
	} else {
		session.formatter.Pause()
	}
	session.paused = !session.paused
	return session.paused
}

func (session *session) stop() {
	if session.formatter != nil {
		session.formatter.Stop()
		session.formatter = nil
	}
}

func handleEvent(event relative.Event, trayManager *tray.Manager) {
	switch event.Type {
	case relative.EventRendered:
		status := "updated " + event.At.Format("15:04:05")
		fyne.Do(func() {
			trayManager.SetStatus(status)
		})
	case relative.EventRenderError:
		fyne.Do(func() {
			trayManager.SetStatus("error: " + event.Message)
		})
	}
}
