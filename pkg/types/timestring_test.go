package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "09:05", "23:59"}
	for _, v := range valid {
		ts, err := NewTimeStringFromString(v)
		require.NoError(t, err)
		assert.Equal(t, v, ts.String())
	}

	invalid := []string{"", "9:00:00", "24:00", "12:60", "noon"}
	for _, v := range invalid {
		_, err := NewTimeStringFromString(v)
		assert.Error(t, err, "expected %q to be rejected", v)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("13:45")
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, ts.Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)

	moved, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", moved.String())

	// Конец суток недостижим
	late, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)
	_, err = late.AddMinutes(30)
	assert.Error(t, err)
	_, err = late.AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	a, _ := NewTimeStringFromString("09:00")
	b, _ := NewTimeStringFromString("10:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_At(t *testing.T) {
	ts, _ := NewTimeStringFromString("14:30")
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC), ts.At(date))
}

func TestTimeString_ScanTrimsSeconds(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan([]byte("17:00:00")))
	assert.Equal(t, "17:00", ts.String())
}
