package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the on-disk representation of a Date.
const DateLayout = "2006-01-02"

// MinYear and MaxYear bound the years DateLayout can hold.
const (
	MinYear = 0
	MaxYear = 9999
)

// ErrDateOutOfRange is returned for dates the YYYY-MM-DD form cannot represent.
var ErrDateOutOfRange = errors.New("date is outside years 0000-9999")

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a calendar day with no time-of-day and no zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day according to now.
func Today(now func() time.Time) Date {
	return DateOf(now())
}

// NewDate builds a Date, normalizing out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns midnight UTC of the day. Used only for arithmetic and formatting.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays moves the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// DaysUntil returns the number of calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Check reports ErrDateOutOfRange when d cannot be stored.
func (d Date) Check() error {
	if d.Year < MinYear || d.Year > MaxYear {
		return fmt.Errorf("%w: %s", ErrDateOutOfRange, EncodeDate(d))
	}
	return nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return EncodeDate(d)
}

// EncodeDate formats d as YYYY-MM-DD.
func EncodeDate(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DecodeDate parses a strict YYYY-MM-DD string. Impossible days such as
// 2024-02-30 are rejected.
func DecodeDate(s string) (Date, error) {
	if !datePattern.MatchString(s) {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	return json.Marshal(EncodeDate(d))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := DecodeDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
