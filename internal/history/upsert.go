package history

import (
	"errors"
	"fmt"
)

// ErrEditFailed wraps any failure of a TextProvider during Upsert.
var ErrEditFailed = errors.New("message edit failed")

// TextProvider supplies the text to store for a date. When the date already
// holds a message, prior is that message and hasPrior is true, so an editor
// can start from it. The call may block on user interaction.
type TextProvider func(prior string, hasPrior bool) (string, error)

// Upsert schedules the text returned by provide for date, replacing any
// existing message for that date. If provide fails the store is left
// unchanged and the error wraps ErrEditFailed. Dates outside the storable
// range are refused before provide is called.
func (s *Store) Upsert(date Date, provide TextProvider) error {
	if err := date.Check(); err != nil {
		return err
	}

	prior, hasPrior := s.FindByDate(date)

	text, err := provide(prior, hasPrior)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEditFailed, err)
	}

	s.removeDate(date)
	s.entries = append(s.entries, Entry{Date: date, Text: text})
	return nil
}

// Remove deletes every message scheduled for date and reports whether one existed.
func (s *Store) Remove(date Date) bool {
	return s.removeDate(date) > 0
}

func (s *Store) removeDate(date Date) int {
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if e.Date == date {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed
}
