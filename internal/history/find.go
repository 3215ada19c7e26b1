package history

import "sort"

// FindByOffset returns the message scheduled offsetDays from today. Negative
// offsets look into the past.
//
// If the document was edited by hand and holds several entries for the same
// date, the first one in the store's current order wins.
func (s *Store) FindByOffset(offsetDays int, today Date) (string, bool) {
	return s.FindByDate(today.AddDays(offsetDays))
}

// FindByDate returns the message scheduled for date. Duplicate dates resolve
// to the first occurrence.
func (s *Store) FindByDate(date Date) (string, bool) {
	for _, e := range s.entries {
		if e.Date == date {
			return e.Text, true
		}
	}
	return "", false
}

// Entries returns a copy of all entries in held order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Between returns the entries dated from..to inclusive, sorted by date.
// A zero bound is open.
func (s *Store) Between(from, to Date) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Len returns the number of entries held.
func (s *Store) Len() int {
	return len(s.entries)
}
