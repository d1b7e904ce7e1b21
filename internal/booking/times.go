package booking

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ParseClock converts a zero-padded HH:MM string to minutes since midnight.
func ParseClock(value string) (int64, error) {
	parsed, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: must be HH:MM", value)
	}
	return int64(parsed.Hour()*60 + parsed.Minute()), nil
}

// FormatClock converts minutes since midnight back to a zero-padded HH:MM
// string. Minutes must be within a single day.
func FormatClock(minutes int64) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes adds a duration to an HH:MM start time. The result must stay
// within the same calendar day; bookings never cross midnight.
func AddMinutes(start string, minutes int64) (string, error) {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	end := startMinutes + minutes
	if end > 24*60 {
		return "", fmt.Errorf("booking ending at %d minutes past midnight crosses into the next day", end-24*60)
	}
	if end == 24*60 {
		return "24:00", nil
	}
	return FormatClock(end), nil
}

// ParseDate validates a YYYY-MM-DD calendar day.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", value)
	}
	return parsed, nil
}

// WeekdayOf returns the day of week (0 = Sunday) for a YYYY-MM-DD date.
func WeekdayOf(date string) (int64, error) {
	parsed, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int64(parsed.Weekday()), nil
}

// FormatDate renders a calendar day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatClockTime renders a timestamp's time of day as HH:MM.
func FormatClockTime(t time.Time) string {
	return t.Format(clockLayout)
}
