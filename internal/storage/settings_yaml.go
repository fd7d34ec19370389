package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"ago/internal/core/model"
	"ago/internal/core/relative"
	"ago/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	IntervalSeconds int          `yaml:"interval_seconds,omitempty"`
	Style           string       `yaml:"style,omitempty"`
	Units           []model.Unit `yaml:"units,omitempty"`
	Events          []yamlEvent  `yaml:"events,omitempty"`
}

type yamlEvent struct {
	Name     string `yaml:"name"`
	Datetime string `yaml:"datetime"`
}

// LoadSettingsFile reads user preferences from a YAML file.
// If the file does not exist, default settings are returned.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, errors.Wrap(err, "read settings file")
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, errors.Wrap(err, "parse settings yaml")
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return preferences.DefaultSettings(), errors.Wrapf(err, "settings %s", configPath)
	}
	return settings, nil
}

// SaveSettingsFile writes user preferences to a YAML file.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	fileData := yamlSettings{
		IntervalSeconds: int(settings.Interval / time.Second),
		Style:           settings.Style,
		Units:           settings.Units,
	}
	for _, event := range settings.Events {
		fileData.Events = append(fileData.Events, yamlEvent{
			Name:     event.Name,
			Datetime: event.At.Format(time.RFC3339Nano),
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return errors.Wrap(err, "marshal settings yaml")
	}

	if err := WriteFileAtomic(configPath, serialized, 0o644); err != nil {
		return errors.Wrap(err, "write settings file")
	}

	return nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) error {
	if fileData.IntervalSeconds > 0 {
		settings.Interval = time.Duration(fileData.IntervalSeconds) * time.Second
	}

	if fileData.Style != "" {
		if relative.FormatByName(fileData.Style) == nil {
			return errors.Errorf("unknown style %q", fileData.Style)
		}
		settings.Style = fileData.Style
	}

	if len(fileData.Units) > 0 {
		if err := model.ValidateUnits(fileData.Units); err != nil {
			return err
		}
		settings.Units = fileData.Units
	}

	for index, event := range fileData.Events {
		at, err := relative.ParseTimestamp(event.Datetime)
		if err != nil {
			return errors.Wrapf(err, "event %d (%s)", index, event.Name)
		}
		settings.Events = append(settings.Events, preferences.Event{Name: event.Name, At: at})
	}
	return nil
}
