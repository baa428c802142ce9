package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUTC(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2026-09-10T07:30:00", time.Date(2026, 9, 10, 7, 30, 0, 0, time.UTC)},
		{"2026-09-10T07:30", time.Date(2026, 9, 10, 7, 30, 0, 0, time.UTC)},
		{"2026-09-10T09:30:00+02:00", time.Date(2026, 9, 10, 7, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		parsed, err := ParseUTC(tt.input)
		require.NoError(t, err, tt.input)
		assert.True(t, parsed.Equal(tt.expected), "parsed %s as %s", tt.input, parsed)
		assert.Equal(t, time.UTC, parsed.Location())
	}
}

func TestParseUTCInvalid(t *testing.T) {
	_, err := ParseUTC("10/09/2026 07:30")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("2026-9-10")
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2h 5min", FormatDuration(125))
	assert.Equal(t, "0h 45min", FormatDuration(45))
	assert.Equal(t, "2h 0min", FormatDuration(120))
}
