package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeString
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:05", want: "09:05"},
		{in: "18:30:00", want: "18:30"},
		{in: " 07:15 ", want: "07:15"},
		{in: "", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("07:30").IsBefore("09:00"))
	assert.False(t, TimeString("18:00").IsBefore("09:00"))
	assert.Equal(t, 9*60+30, TimeString("09:30").Minutes())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("09:00:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-01-07"))
	assert.Equal(t, "2024-01-07", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-07", d.String())

	require.NoError(t, d.Scan([]byte("2024-01-07T00:00:00Z")))
	assert.Equal(t, "2024-01-07", d.String())

	assert.ErrorIs(t, d.Scan(42), ErrInvalidDate)
}

func TestNewDate_KeepsLocalCalendarDay(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*3600)
	local := time.Date(2024, 1, 7, 1, 0, 0, 0, zone)

	assert.Equal(t, "2024-01-07", NewDate(local).String())
}

func TestTimestamp_RoundTripThroughText(t *testing.T) {
	original := time.Date(2024, 1, 7, 10, 30, 15, 500, time.UTC)

	value, err := NewTimestamp(original).Value()
	require.NoError(t, err)

	var ts Timestamp
	require.NoError(t, ts.Scan(value))
	assert.True(t, original.Equal(ts.Time))

	require.NoError(t, ts.Scan("2024-01-07 10:30:15"))
	assert.Equal(t, 10, ts.Hour())
}
