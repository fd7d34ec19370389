package relative

import (
	"math"
	"time"

	"ago/internal/core/model"
)

// Compute maps a signed delta (now minus event time) onto the unit ladder.
//
// The ladder is walked in order and the walk stops at the first threshold
// the absolute delta does not reach, so the result is the largest unit only
// when the ladder is ascending. With no unit reached the magnitude is the
// raw number of seconds and unit is empty. The sign of the magnitude
// follows delta. Non-positive thresholds are skipped.
func Compute(delta time.Duration, units []model.Unit) (int64, string) {
	absolute := delta
	if absolute < 0 {
		absolute = -absolute
		if absolute < 0 {
			absolute = math.MaxInt64
		}
	}
	seconds := int64(absolute / time.Second)

	unit := ""
	var threshold int64
	for _, candidate := range units {
		if candidate.Seconds <= 0 {
			continue
		}
		if candidate.Seconds > seconds {
			break
		}
		if seconds/candidate.Seconds != 1 {
			unit = candidate.Plural
		} else {
			unit = candidate.Singular
		}
		threshold = candidate.Seconds
	}

	magnitude := seconds
	if threshold > 0 {
		magnitude = seconds / threshold
	}
	if delta < 0 {
		magnitude = -magnitude
	}
	return magnitude, unit
}
