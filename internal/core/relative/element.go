package relative

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// DefaultSelector selects the elements a Host tracks when no list is given.
const DefaultSelector = "time"

// DateAttribute is the attribute DefaultDate reads the timestamp from.
const DateAttribute = "datetime"

// ErrInvalidTimestamp indicates an element timestamp that is missing or unparseable.
// Elements failing with it are rendered as if no unit was reached.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Element is a display handle whose text the formatter controls.
type Element interface {
	Attr(name string) (string, bool)
	SetText(text string)
}

// Host enumerates elements by selector.
type Host interface {
	QueryAll(selector string) []Element
}

// DateAccessor returns the reference time of an element.
type DateAccessor func(Element) (time.Time, error)

// DefaultDate reads the datetime attribute of an element.
func DefaultDate(element Element) (time.Time, error) {
	raw, ok := element.Attr(DateAttribute)
	if !ok {
		return time.Time{}, errors.Wrapf(ErrInvalidTimestamp, "missing %s attribute", DateAttribute)
	}
	return ParseTimestamp(raw)
}

// dateOnlyLayouts are read as UTC, every other zoneless value as local time.
var dateOnlyLayouts = []string{"2006-01-02", "2006-01"}

// ParseTimestamp parses a timestamp in any of the common machine-readable layouts.
// Values without a zone are local time, except bare ISO dates which are UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, errors.Wrap(ErrInvalidTimestamp, "empty value")
	}
	for _, layout := range dateOnlyLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	if strings.IndexFunc(value, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
		return time.Time{}, errors.Wrapf(ErrInvalidTimestamp, "bare number %q", value)
	}
	parsed, err := dateparse.ParseIn(value, time.Local)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidTimestamp, "parse %q: %v", value, err)
	}
	return parsed, nil
}
