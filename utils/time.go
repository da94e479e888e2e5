package utils

import (
	"fmt"
	"time"
)

// departure time layouts accepted from clients; the second is what an HTML
// datetime-local input submits.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

func ParseDepartureTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized departure time %q", value)
}

// FormatDeparture renders a timestamp the way notification mail shows it.
func FormatDeparture(t time.Time) string {
	return t.Local().Format("Mon, 02 Jan 2006 15:04")
}
