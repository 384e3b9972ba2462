package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30", ts.String())

	invalid := []string{
		"8:30", // not zero-padded, would never match a catalog value
		"25:00",
		"12:60",
		"ab:cd",
		"08-30",
		"08:300",
		"",
	}
	for _, s := range invalid {
		_, err = NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
	}
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.True(t, TimeString("18:00").IsAfter("12:00"))
	assert.False(t, TimeString("bad").IsBefore("12:00"), "invalid values compare false")
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("08:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = TimeString("22:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts, "end of day is the exclusive 24h mark")

	_, err = TimeString("23:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("08:00:00"))
	assert.Equal(t, TimeString("08:00"), ts, "trailing seconds are trimmed")

	require.NoError(t, ts.Scan("8:30:00"))
	assert.Equal(t, TimeString("8:30:00"), ts, "non-padded input is kept whole for Validate to reject")
	assert.ErrorIs(t, ts.Validate(), ErrInvalidTimeString)

	require.NoError(t, ts.Scan([]byte("18:30")))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 14, 12, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
