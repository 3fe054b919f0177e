package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday ordinals run Monday=0 through Sunday=6, the week convention of the
// source exports. time.Weekday is Sunday-based, so conversions go through
// WeekdayIndex and WeekdayName rather than the stdlib values.

// WeekdayNames lists weekday names in Monday-first order.
var WeekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// WeekdayIndex converts a timestamp's weekday to the Monday-first ordinal.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayName returns the name for a Monday-first weekday ordinal.
func WeekdayName(d int) string {
	return WeekdayNames[d]
}

// ParseMonth reads a month given as a name ("June", case-insensitive) or a
// calendar number ("6").
func ParseMonth(value string) (time.Month, error) {
	trimmed := strings.TrimSpace(value)
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %d out of range: use 1 through 12", n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(trimmed, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q: use a name like June or a number 1-12", value)
}

// ParseWeekday reads a weekday given as a name ("Monday", case-insensitive)
// or a Monday-first ordinal ("0").
func ParseWeekday(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday %d out of range: use 0 (Monday) through 6 (Sunday)", n)
		}
		return n, nil
	}
	for i, name := range WeekdayNames {
		if strings.EqualFold(trimmed, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q: use a name like Monday or a number 0-6", value)
}
