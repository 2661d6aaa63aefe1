package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime int

const minutesPerDay = 24 * 60

// ParseClockTime parses a 24h "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", s)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Value implements driver.Valuer
func (c ClockTime) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan implements sql.Scanner. PostgreSQL returns TIME columns as
// "HH:MM:SS[.ffffff]" strings.
func (c *ClockTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = 0
		return nil
	case time.Time:
		*c = ClockTime(v.Hour()*60 + v.Minute())
		return nil
	case int64:
		// microseconds since midnight
		*c = ClockTime((v / int64(time.Minute/time.Microsecond)) % minutesPerDay)
		return nil
	case []byte:
		return c.scanString(string(v))
	case string:
		return c.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", value)
	}
}

func (c *ClockTime) scanString(s string) error {
	if len(s) < 5 {
		return fmt.Errorf("cannot scan %q into ClockTime", s)
	}
	parsed, err := ParseClockTime(s[:5])
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
