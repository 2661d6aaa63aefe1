package entity

import (
	"fmt"
	"strings"
	"time"
)

// DayOfWeek is the recurring weekday a template slot applies to.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// DaysOfWeek lists the days in calendar order, Monday first.
var DaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDayOfWeek accepts a day name in any letter case.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	d := DayOfWeek(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("invalid day of week %q", s)
	}
	return d, nil
}

func (d DayOfWeek) Valid() bool {
	return d.Index() >= 0
}

// Index is the position of d in the Monday-first week, or -1.
func (d DayOfWeek) Index() int {
	for i, day := range DaysOfWeek {
		if day == d {
			return i
		}
	}
	return -1
}

func (d DayOfWeek) String() string {
	return string(d)
}

// DayOfWeekOf maps a time.Weekday onto the Monday-first enumeration.
func DayOfWeekOf(wd time.Weekday) DayOfWeek {
	// time.Sunday == 0
	return DaysOfWeek[(int(wd)+6)%7]
}
