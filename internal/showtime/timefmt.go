package showtime

import (
	"fmt"
	"strings"
	"time"
)

// FormatTime converts a 24-hour "HH:MM" (or "HH:MM:SS") string to a 12-hour
// label such as "2:30 PM".  Input that does not parse is returned unchanged.
func FormatTime(hour string) string {
	s := strings.TrimSpace(hour)
	var t time.Time
	var err error
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err = time.Parse(layout, s); err == nil {
			break
		}
	}
	if err != nil {
		return hour
	}
	h := t.Hour()
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), period)
}
