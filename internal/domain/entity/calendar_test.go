package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayOfWeek(t *testing.T) {
	for _, in := range []string{"tuesday", "TUESDAY", " Tuesday "} {
		d, err := ParseDayOfWeek(in)
		require.NoError(t, err, in)
		assert.Equal(t, Tuesday, d)
	}

	_, err := ParseDayOfWeek("TUES")
	assert.Error(t, err)
	_, err = ParseDayOfWeek("")
	assert.Error(t, err)
}

func TestDayOfWeekOf_MondayFirst(t *testing.T) {
	assert.Equal(t, Monday, DayOfWeekOf(time.Monday))
	assert.Equal(t, Sunday, DayOfWeekOf(time.Sunday))
	assert.Equal(t, 0, Monday.Index())
	assert.Equal(t, 6, Sunday.Index())
	assert.Equal(t, -1, DayOfWeek("FUNDAY").Index())
}

func TestParseClockTime(t *testing.T) {
	c, err := ParseClockTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(9*60+30), c)
	assert.Equal(t, "09:30", c.String())

	end, err := ParseClockTime("23:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59", end.String())

	for _, bad := range []string{"24:00", "9:3", "09:60", "noon", ""} {
		_, err := ParseClockTime(bad)
		assert.Error(t, err, bad)
	}
}

func TestClockTime_Scan(t *testing.T) {
	var c ClockTime

	require.NoError(t, c.Scan("14:15:00"))
	assert.Equal(t, "14:15", c.String())

	require.NoError(t, c.Scan([]byte("08:05")))
	assert.Equal(t, "08:05", c.String())

	require.NoError(t, c.Scan(time.Date(0, 1, 1, 17, 45, 0, 0, time.UTC)))
	assert.Equal(t, "17:45", c.String())

	require.NoError(t, c.Scan(int64(10*time.Hour/time.Microsecond)))
	assert.Equal(t, "10:00", c.String())

	assert.Error(t, c.Scan(3.14))
}

func TestDate_WeekBounds(t *testing.T) {
	cases := []struct {
		date      string
		weekStart string
		weekEnd   string
		day       DayOfWeek
	}{
		{"2024-01-16", "2024-01-15", "2024-01-21", Tuesday},
		{"2024-01-15", "2024-01-15", "2024-01-21", Monday},
		{"2024-01-21", "2024-01-15", "2024-01-21", Sunday},
		{"2024-01-23", "2024-01-22", "2024-01-28", Tuesday},
		// Weeks may span a year boundary.
		{"2025-01-01", "2024-12-30", "2025-01-05", Wednesday},
	}

	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			d, err := ParseDate(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.day, d.DayOfWeek())
			assert.Equal(t, tc.weekStart, d.WeekStart().String())
			assert.Equal(t, tc.weekEnd, d.WeekEnd().String())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, bad := range []string{"2024-02-30", "16-01-2024", "2024/01/16", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDate_ScanAndJSON(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-01-16"))
	assert.Equal(t, "2024-01-16", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 1, 23, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-23", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	raw, err := json.Marshal(NewDate(2024, 1, 16))
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-16"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Equal(NewDate(2024, 1, 16)))
}

func TestAvailabilitySlot_Overlaps(t *testing.T) {
	slot := func(day DayOfWeek, start, end string) *AvailabilitySlot {
		s, err := ParseClockTime(start)
		require.NoError(t, err)
		e, err := ParseClockTime(end)
		require.NoError(t, err)
		return &AvailabilitySlot{DayOfWeek: day, StartTime: s, EndTime: e}
	}

	base := slot(Monday, "09:00", "10:00")

	assert.True(t, base.Overlaps(slot(Monday, "09:30", "10:30")))
	assert.True(t, base.Overlaps(slot(Monday, "09:15", "09:45")))
	assert.False(t, base.Overlaps(slot(Monday, "10:00", "11:00")), "touching at end")
	assert.False(t, base.Overlaps(slot(Monday, "08:00", "09:00")), "touching at start")
	assert.False(t, base.Overlaps(slot(Tuesday, "09:30", "10:30")), "different day")

	assert.True(t, base.ValidRange())
	assert.False(t, slot(Monday, "09:00", "09:00").ValidRange())
	assert.False(t, slot(Monday, "10:00", "09:00").ValidRange())

	assert.Less(t, slot(Monday, "23:00", "23:30").SortKey(), slot(Tuesday, "00:00", "00:30").SortKey())
}

func TestBooking_Cancel(t *testing.T) {
	b := &Booking{IsActive: true}
	assert.False(t, b.IsCancelled())

	b.Cancel()
	assert.True(t, b.IsCancelled())
	assert.False(t, b.IsActive)
}
