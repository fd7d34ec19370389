package preferences

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"ago/internal/core/relative"
)

const eventSeparator = "="

// ParseEvents reads one "name = timestamp" pair per line. Blank lines and
// lines starting with # are ignored.
func ParseEvents(text string) ([]Event, error) {
	var events []Event
	for number, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, raw, found := strings.Cut(line, eventSeparator)
		if !found {
			return nil, errors.Errorf("line %d: expected name %s timestamp", number+1, eventSeparator)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.Errorf("line %d: event name is empty", number+1)
		}
		at, err := relative.ParseTimestamp(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", number+1)
		}
		events = append(events, Event{Name: name, At: at})
	}
	return events, nil
}

// FormatEvents is the inverse of ParseEvents.
func FormatEvents(events []Event) string {
	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, event.Name+" "+eventSeparator+" "+event.At.Format(time.RFC3339Nano))
	}
	return strings.Join(lines, "\n")
}
