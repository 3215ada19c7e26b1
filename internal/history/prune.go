package history

// MaxRetentionDays reaches back past year 0 from any storable date, so a
// larger window keeps everything.
const MaxRetentionDays = (MaxYear + 1) * 366

// PruneExpired drops entries dated strictly before today minus retentionDays.
// Future entries are never dropped. A negative window counts as zero.
func (s *Store) PruneExpired(today Date, retentionDays int) {
	if retentionDays < 0 {
		retentionDays = 0
	}
	if retentionDays > MaxRetentionDays {
		retentionDays = MaxRetentionDays
	}
	cutoff := today.AddDays(-retentionDays)
	if cutoff.After(today) {
		return
	}

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Date.Before(cutoff) {
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
}
