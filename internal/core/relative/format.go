package relative

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatFunc renders a signed magnitude and unit label. An empty unit means
// the duration was below the smallest threshold.
type FormatFunc func(magnitude int64, unit string) string

// DefaultFormat renders "just now", "5 minutes ago" or "2 days ahead".
func DefaultFormat(magnitude int64, unit string) string {
	if unit == "" {
		return "just now"
	}
	return strconv.FormatInt(abs(magnitude), 10) + " " + unit + suffix(magnitude)
}

// GroupedFormat is DefaultFormat with thousands separators in the magnitude.
func GroupedFormat(magnitude int64, unit string) string {
	if unit == "" {
		return "just now"
	}
	return humanize.Comma(abs(magnitude)) + " " + unit + suffix(magnitude)
}

// FormatByName resolves a named style; unknown names return nil.
func FormatByName(name string) FormatFunc {
	switch name {
	case "", StyleDefault:
		return DefaultFormat
	case StyleGrouped:
		return GroupedFormat
	}
	return nil
}

// Format style names.
const (
	StyleDefault = "default"
	StyleGrouped = "grouped"
)

func suffix(magnitude int64) string {
	if magnitude < 0 {
		return " ahead"
	}
	return " ago"
}

func abs(value int64) int64 {
	if value < 0 {
		return -value
	}
	return value
}
