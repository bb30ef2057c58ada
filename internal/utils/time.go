package utils

import (
	"fmt"
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// WeekdayName returns the full weekday name ("Monday" .. "Sunday") for a
// YYYY-MM-DD date string.
func WeekdayName(dateStr string) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}

// SegmentDuration derives the HH:MM travel time between two stops from
// their times of day and journey day offsets.
func SegmentDuration(departure string, departureDay int, arrival string, arrivalDay int) string {
	dep, errD := time.Parse("15:04", strings.TrimSpace(departure))
	arr, errA := time.Parse("15:04", strings.TrimSpace(arrival))
	if errD != nil || errA != nil {
		return ""
	}
	minutes := (arrivalDay-departureDay)*24*60 +
		(arr.Hour()*60 + arr.Minute()) - (dep.Hour()*60 + dep.Minute())
	if minutes < 0 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
