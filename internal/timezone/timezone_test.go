package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Nowhere/Invalid").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", FormatDate(d))

	_, err = ParseDate("09/03/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024-03-09T10:30:00Z")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC)))

	ts, err = ParseTimestamp("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Day())
	assert.Equal(t, DefaultTimezone, ts.Location().String())

	_, err = ParseTimestamp("ontem")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
