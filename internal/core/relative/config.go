package relative

import (
	"slices"
	"time"

	"dario.cat/mergo"

	"ago/internal/core/model"
)

// DefaultInterval is the time between two render passes.
const DefaultInterval = 10 * time.Second

// Config contains the formatter options. Zero fields take defaults.
type Config struct {
	Interval time.Duration
	Units    []model.Unit
	Date     DateAccessor
	Format   FormatFunc
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Units:    model.DefaultUnits(),
		Date:     DefaultDate,
		Format:   DefaultFormat,
	}
}

// Merge returns overrides with every unset field taken from defaults.
// Neither argument is modified and the result owns its unit ladder.
func Merge(defaults, overrides Config) Config {
	merged := overrides
	merged.Units = slices.Clone(overrides.Units)
	if merged.Interval <= 0 {
		merged.Interval = 0
	}
	if err := mergo.Merge(&merged, defaults); err != nil {
		// mergo only fails on mismatched kinds, which two Config values cannot have.
		panic(err)
	}
	merged.Units = slices.Clone(merged.Units)
	return merged
}
