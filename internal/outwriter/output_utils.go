package outwriter

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatHour12 renders an hour of day on the two-digit 12-hour clock:
// 0 -> "12 AM", 8 -> "08 AM", 12 -> "12 PM", 17 -> "05 PM".
func FormatHour12(hour int) string {
	return time.Date(2017, time.January, 1, hour, 0, 0, 0, time.UTC).Format("03 PM")
}

// FormatCount renders a count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatDuration renders a duration as clock arithmetic: "H:MM:SS", with
// whole days split out in front ("3 days, 2:15:30") once the duration spans
// more than a day. Sub-second noise rounds away.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	days := d / (24 * time.Hour)
	remainder := d % (24 * time.Hour)
	hours := remainder / time.Hour
	minutes := (remainder % time.Hour) / time.Minute
	seconds := (remainder % time.Minute) / time.Second

	clock := fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	switch {
	case days == 0:
		return clock
	case days == 1:
		return fmt.Sprintf("1 day, %s", clock)
	default:
		return fmt.Sprintf("%s days, %s", humanize.Comma(int64(days)), clock)
	}
}
