package model

import (
	"github.com/pkg/errors"
)

// ErrInvalidUnits indicates a unit ladder that cannot be used for labels.
var ErrInvalidUnits = errors.New("invalid unit ladder")

// Unit is one rung of the unit ladder.
type Unit struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
	Seconds  int64  `yaml:"seconds"`
}

// DefaultUnits returns the standard ladder from minutes to years.
// Months and years are fixed 30 and 365 day approximations.
func DefaultUnits() []Unit {
	return []Unit{
		{Singular: "minute", Plural: "minutes", Seconds: 60},
		{Singular: "hour", Plural: "hours", Seconds: 3600},
		{Singular: "day", Plural: "days", Seconds: 86400},
		{Singular: "week", Plural: "weeks", Seconds: 604800},
		{Singular: "month", Plural: "months", Seconds: 2592000},
		{Singular: "year", Plural: "years", Seconds: 31536000},
	}
}

// ValidateUnits checks that a ladder is non-empty, labelled and strictly ascending.
func ValidateUnits(units []Unit) error {
	if len(units) == 0 {
		return errors.Wrap(ErrInvalidUnits, "ladder is empty")
	}
	var previous int64
	for index, unit := range units {
		if unit.Singular == "" || unit.Plural == "" {
			return errors.Wrapf(ErrInvalidUnits, "unit %d has an empty label", index)
		}
		if unit.Seconds <= 0 {
			return errors.Wrapf(ErrInvalidUnits, "unit %q has non-positive threshold %d", unit.Singular, unit.Seconds)
		}
		if unit.Seconds <= previous {
			return errors.Wrapf(ErrInvalidUnits, "unit %q threshold %d is not above %d", unit.Singular, unit.Seconds, previous)
		}
		previous = unit.Seconds
	}
	return nil
}
