package relative

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "rfc3339", input: "2026-03-14T15:09:26Z", want: baseTime},
		{name: "offset", input: "2026-03-14T17:09:26+02:00", want: baseTime},
		{name: "padded", input: "  2026-03-14T15:09:26Z\n", want: baseTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseTimestampZonelessValues(t *testing.T) {
	previous := time.Local
	time.Local = time.FixedZone("UTC+1", 60*60)
	t.Cleanup(func() { time.Local = previous })

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "local date and time", input: "2026-03-14T12:09", want: time.Date(2026, time.March, 14, 11, 9, 0, 0, time.UTC)},
		{name: "space separated", input: "2026-03-14 12:09:26", want: time.Date(2026, time.March, 14, 11, 9, 26, 0, time.UTC)},
		{name: "explicit zone wins", input: "2026-03-14T12:09:26Z", want: time.Date(2026, time.March, 14, 12, 9, 26, 0, time.UTC)},
		{name: "date only is utc", input: "2026-03-14", want: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)},
		{name: "year and month is utc", input: "2026-03", want: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "1700000000", "2026"} {
		_, err := ParseTimestamp(input)
		assert.True(t, errors.Is(err, ErrInvalidTimestamp), "input %q", input)
	}
}

func TestDefaultDateMissingAttribute(t *testing.T) {
	_, err := DefaultDate(&fakeElement{attrs: map[string]string{}})
	assert.True(t, errors.Is(err, ErrInvalidTimestamp))

	got, err := DefaultDate(newFakeElement("2026-03-14T15:09:26Z"))
	require.NoError(t, err)
	assert.True(t, baseTime.Equal(got))
}
