package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a date expression relative to the current time.
func ParseDate(s string) (time.Time, error) {
	return parseDate(s, time.Now())
}

// ParseDateFrom parses a date expression relative to now.
func ParseDateFrom(s string, now time.Time) (time.Time, error) {
	return parseDate(s, now)
}

var inNDays = regexp.MustCompile(`^in (\d+) days?$`)

// maxDaysAhead bounds "in N days" to keep the result a real calendar date.
const maxDaysAhead = 36600

// parseDate parses a date expression relative to now and returns midnight of
// that day in now's location.
// Supports: "today", "tomorrow", "yesterday", "in 3 days", "monday",
// "next tuesday", "on Monday", "2024-01-15", "Jan 2", "Jan 2 2006",
// "January 2", "January 2 2006", "2 Jan", "2 Jan 2006", "2 January",
// "2 January 2006".
func parseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	// Strip "on " prefix
	s = strings.TrimPrefix(s, "on ")
	s = strings.TrimSpace(s)

	switch s {
	case "today":
		return truncateToDay(now), nil
	case "tomorrow":
		return truncateToDay(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return truncateToDay(now).AddDate(0, 0, -1), nil
	}

	if m := inNDays.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxDaysAhead {
			return time.Time{}, fmt.Errorf("date %q is too far ahead (at most %d days)", s, maxDaysAhead)
		}
		return truncateToDay(now).AddDate(0, 0, n), nil
	}

	// Weekday names (with optional "next " prefix)
	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := parseWeekday(cleaned); ok {
		return nextWeekday(now, wd), nil
	}

	layouts := []string{
		"2006-01-02",
		"jan 2",
		"jan 2 2006",
		"january 2",
		"january 2 2006",
		"2 jan",
		"2 jan 2006",
		"2 january",
		"2 january 2006",
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err != nil {
			continue
		}
		// For layouts without a year, use the current year
		if !hasYear(layout) {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdays[s]
	return wd, ok
}

// nextWeekday returns the next occurrence of the given weekday after now.
// If now is that weekday, it returns the following week.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	today := truncateToDay(now)
	daysAhead := int(wd) - int(today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead)
}

func hasYear(layout string) bool {
	return strings.Contains(layout, "2006")
}
