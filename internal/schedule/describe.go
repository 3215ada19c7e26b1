package schedule

import (
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"
)

var weekdayNames = map[rrule.Weekday]string{
	rrule.MO: "Monday",
	rrule.TU: "Tuesday",
	rrule.WE: "Wednesday",
	rrule.TH: "Thursday",
	rrule.FR: "Friday",
	rrule.SA: "Saturday",
	rrule.SU: "Sunday",
}

// Describe returns a short human-readable form of a recurrence, such as
// "every weekday" or "every 2 weeks".
func Describe(r *rrule.RRule) string {
	opts := r.OrigOptions
	interval := opts.Interval
	if interval < 1 {
		interval = 1
	}

	if opts.Freq == rrule.WEEKLY && len(opts.Byweekday) > 0 {
		days := opts.Byweekday
		switch {
		case sameWeekdays(days, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR):
			return "every weekday"
		case sameWeekdays(days, rrule.SA, rrule.SU):
			return "every weekend"
		}
		names := make([]string, len(days))
		for i, d := range days {
			names[i] = weekdayName(d)
		}
		prefix := "every "
		if interval > 1 {
			prefix = fmt.Sprintf("every %d weeks on ", interval)
		}
		return prefix + strings.Join(names, ", ")
	}

	var unit string
	switch opts.Freq {
	case rrule.DAILY:
		unit = "day"
	case rrule.WEEKLY:
		unit = "week"
	case rrule.MONTHLY:
		unit = "month"
	case rrule.YEARLY:
		unit = "year"
	default:
		return r.String()
	}
	if interval > 1 {
		return fmt.Sprintf("every %d %ss", interval, unit)
	}
	return "every " + unit
}

func weekdayName(d rrule.Weekday) string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return d.String()
}

// sameWeekdays reports whether days holds exactly the expected weekdays in any order.
func sameWeekdays(days []rrule.Weekday, expected ...rrule.Weekday) bool {
	if len(days) != len(expected) {
		return false
	}
	want := make(map[rrule.Weekday]bool, len(expected))
	for _, e := range expected {
		want[e] = true
	}
	for _, d := range days {
		if !want[d] {
			return false
		}
		delete(want, d)
	}
	return len(want) == 0
}
