package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)
)

// IsValidDate accepts only strict YYYY-MM-DD strings naming a real calendar day.
func IsValidDate(value string) bool {
	if !dateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// IsValidTime accepts only strict 24-hour HH:MM strings.
func IsValidTime(value string) bool {
	return timeRegex.MatchString(value)
}

// ParseDate parses a YYYY-MM-DD date as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD format", value)
	}
	return time.ParseInLocation(DateLayout, value, loc)
}

// ClockMinutes converts HH:MM into minutes after midnight.
func ClockMinutes(value string) (int, error) {
	if !IsValidTime(value) {
		return 0, fmt.Errorf("time %q is not in HH:MM format", value)
	}
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsFutureDate reports whether date is today or later in now's location.
func IsFutureDate(date string, now time.Time) bool {
	d, err := ParseDate(date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// IsClosedDay reports whether date falls on one of the closed weekdays.
func IsClosedDay(date string, closed []time.Weekday) bool {
	d, err := ParseDate(date, time.UTC)
	if err != nil {
		return false
	}
	for _, day := range closed {
		if d.Weekday() == day {
			return true
		}
	}
	return false
}

// IsWithinBusinessHours checks opening <= value <= closing.
func IsWithinBusinessHours(value, opening, closing string) bool {
	t, err := ClockMinutes(value)
	if err != nil {
		return false
	}
	from, err := ClockMinutes(opening)
	if err != nil {
		return false
	}
	until, err := ClockMinutes(closing)
	if err != nil {
		return false
	}
	return t >= from && t <= until
}

// IsBeforeLastSeating checks value <= lastSeating.
func IsBeforeLastSeating(value, lastSeating string) bool {
	t, err := ClockMinutes(value)
	if err != nil {
		return false
	}
	last, err := ClockMinutes(lastSeating)
	if err != nil {
		return false
	}
	return t <= last
}

// IsPastDateTime reports whether date+time lies strictly before now.
func IsPastDateTime(date, clock string, now time.Time) bool {
	d, err := ParseDate(date, now.Location())
	if err != nil {
		return false
	}
	minutes, err := ClockMinutes(clock)
	if err != nil {
		return false
	}
	return d.Add(time.Duration(minutes) * time.Minute).Before(now)
}

// IsToday reports whether date is the current calendar day in now's location.
func IsToday(date string, now time.Time) bool {
	return date == now.Format(DateLayout)
}

// NormalizeDate renders stored date values as YYYY-MM-DD. Drivers hand dates
// back as plain dates, RFC3339 timestamps or "YYYY-MM-DD HH:MM:SS" strings.
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 10 && dateRegex.MatchString(value[:10]) {
		return value[:10]
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05Z07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DateLayout)
		}
	}
	return value
}

// NormalizeTime renders stored time values ("18:00:00", "18:00", timestamps) as HH:MM.
func NormalizeTime(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 5 && timeRegex.MatchString(value[:5]) {
		return value[:5]
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "15:04:05.999999"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(TimeLayout)
		}
	}
	return value
}
