package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing padding", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = TimeString("garbage").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(6 * 60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("15:00"), got)

	// bookings never cross midnight
	_, err = TimeString("23:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	// TIME columns come back with seconds
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 5, 1, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:45"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("nope").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
