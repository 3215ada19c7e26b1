package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// MaxOccurrences caps how many dates a single recurrence may expand to.
const MaxOccurrences = 366

var everyNWeeks = regexp.MustCompile(`^every (\d+) weeks?$`)
var everyNDays = regexp.MustCompile(`^every (\d+) days?$`)

// ParseRecurrence parses a natural language or raw RRULE recurrence string.
func ParseRecurrence(s string) (*rrule.RRule, error) {
	return parseRecurrence(s)
}

func parseRecurrence(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	// Raw RRULE passthrough
	if isRawRRule(s) {
		raw := strings.ToUpper(s)
		raw = strings.TrimPrefix(raw, "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	switch s {
	case "every day", "daily":
		return rrule.NewRRule(rrule.ROption{
			Freq: rrule.DAILY,
		})

	case "every weekday", "weekdays":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		})

	case "every weekend", "weekends":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})

	case "every week", "weekly":
		return rrule.NewRRule(rrule.ROption{
			Freq: rrule.WEEKLY,
		})

	case "every other week", "every second week":
		return rrule.NewRRule(rrule.ROption{
			Freq:     rrule.WEEKLY,
			Interval: 2,
		})

	case "every month", "monthly":
		return rrule.NewRRule(rrule.ROption{
			Freq: rrule.MONTHLY,
		})
	}

	if strings.HasPrefix(s, "every ") {
		if m := everyNWeeks.FindStringSubmatch(s); m != nil {
			n, _ := strconv.Atoi(m[1])
			return rrule.NewRRule(rrule.ROption{
				Freq:     rrule.WEEKLY,
				Interval: n,
			})
		}

		if m := everyNDays.FindStringSubmatch(s); m != nil {
			n, _ := strconv.Atoi(m[1])
			return rrule.NewRRule(rrule.ROption{
				Freq:     rrule.DAILY,
				Interval: n,
			})
		}

		if wd, ok := rruleWeekday(strings.TrimPrefix(s, "every ")); ok {
			return rrule.NewRRule(rrule.ROption{
				Freq:      rrule.WEEKLY,
				Byweekday: []rrule.Weekday{wd},
			})
		}
	}

	return nil, fmt.Errorf("unrecognized recurrence %q", s)
}

// Occurrences returns the first count dates of rule on or after start, as
// midnights in start's location. A COUNT or UNTIL in the rule itself still
// applies.
func Occurrences(rule *rrule.RRule, start time.Time, count int) ([]time.Time, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive")
	}
	if count > MaxOccurrences {
		return nil, fmt.Errorf("count must be at most %d", MaxOccurrences)
	}

	opts := rule.OrigOptions
	opts.Dtstart = truncateToDay(start)
	if opts.Count == 0 || opts.Count > count {
		opts.Count = count
	}
	r, err := rrule.NewRRule(opts)
	if err != nil {
		return nil, err
	}

	dates := r.All()
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		out = append(out, truncateToDay(d.In(start.Location())))
	}
	return out, nil
}

func isRawRRule(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "freq=") || strings.HasPrefix(lower, "rrule:")
}

var rruleWeekdays = map[string]rrule.Weekday{
	"sunday":    rrule.SU,
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
}

func rruleWeekday(s string) (rrule.Weekday, bool) {
	wd, ok := rruleWeekdays[s]
	return wd, ok
}
