package datewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpandsDayBoundaries(t *testing.T) {
	w, err := Parse("2024-01-01", "2024-02-01")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 2, 1, 23, 59, 59, 999999000, time.UTC), w.End)
	assert.Equal(t, time.UTC, w.Start.Location())
	assert.Equal(t, time.UTC, w.End.Location())
}

func TestParseSameDay(t *testing.T) {
	w, err := Parse("2024-03-15", "2024-03-15")
	require.NoError(t, err)
	assert.True(t, w.End.After(w.Start))
}

func TestParseEndBeforeStart(t *testing.T) {
	_, err := Parse("2024-02-01", "2024-01-01")
	require.Error(t, err)
	assert.Equal(t, "end_date cannot be before start_date.", err.Error())
}

func TestParseInvalidFormat(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"bad start", "01-01-2024", "2024-02-01"},
		{"bad end", "2024-01-01", "Feb 1 2024"},
		{"empty start", "", "2024-02-01"},
		{"empty end", "2024-01-01", ""},
		{"datetime instead of date", "2024-01-01T00:00:00Z", "2024-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.start, tt.end)
			require.Error(t, err)
			assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", err.Error())
		})
	}
}

func TestTodayCoversCurrentDay(t *testing.T) {
	now := time.Now().UTC()
	w := Today()

	assert.Equal(t, 0, w.Start.Hour())
	assert.Equal(t, 0, w.Start.Minute())
	assert.Equal(t, 0, w.Start.Second())
	assert.Equal(t, 23, w.End.Hour())
	assert.Equal(t, 59, w.End.Minute())
	assert.Equal(t, 59, w.End.Second())
	assert.Equal(t, 999999000, w.End.Nanosecond())

	assert.False(t, now.Before(w.Start))
	assert.False(t, now.After(w.End))
}

func TestISOFormatting(t *testing.T) {
	w, err := Parse("2024-02-01", "2024-02-02")
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01T00:00:00Z", w.StartISO())
	assert.Equal(t, "2024-02-02T23:59:59.999999Z", w.EndISO())
}
