package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		missing bool
	}{
		{"plain integer", "1200", 1200, false},
		{"decimal", "49500.5", 49500.5, false},
		{"comma grouping", "49,500", 49500, false},
		{"dollar sign", "$1,234.50", 1234.5, false},
		{"euro sign", "€99", 99, false},
		{"pound sign", "£42.00", 42, false},
		{"accounting negative", "(123.45)", -123.45, false},
		{"leading plus", "+17", 17, false},
		{"scientific", "1.5e3", 1500, false},
		{"surrounding whitespace", "  250  ", 250, false},
		{"empty", "", 0, true},
		{"text", "heavy", 0, true},
		{"mixed", "12kg", 0, true},
		{"double decimal", "1.2.3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseNumber(tt.input)
			if tt.missing {
				assert.True(t, v.IsMissing(), "expected missing for %q", tt.input)
				return
			}
			n, ok := v.Num()
			require.True(t, ok, "expected number for %q", tt.input)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		missing bool
	}{
		{"iso date", "2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"iso timestamp", "2024-03-01 14:30:00", time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC), false},
		{"us slash", "3/1/2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"us slash padded", "03/01/2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"dotted", "1.2.2024", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), false},
		{"month name", "Mar 1, 2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"compact", "20240301", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"whitespace", "  2024-03-01  ", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "not a date", time.Time{}, true},
		{"partial", "2024-03", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseDate(tt.input)
			if tt.missing {
				assert.True(t, v.IsMissing(), "expected missing for %q", tt.input)
				return
			}
			ts, ok := v.Timestamp()
			require.True(t, ok, "expected time for %q", tt.input)
			assert.True(t, ts.Equal(tt.want), "got %v, want %v", ts, tt.want)
		})
	}
}

func TestParseDateTwoDigitYearPivot(t *testing.T) {
	// Recent 2-digit years stay in the current century.
	v := ParseDate("3/1/24")
	ts, ok := v.Timestamp()
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())

	// Years far past the pivot roll back a century.
	v = ParseDate("3/1/85")
	ts, ok = v.Timestamp()
	require.True(t, ok)
	assert.Equal(t, 1985, ts.Year())
}
