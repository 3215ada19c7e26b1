package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrCorruptStore is returned by Load when the history file exists but
	// cannot be read or parsed. Nothing is loaded in that case.
	ErrCorruptStore = errors.New("history file is corrupt")

	// ErrWriteFailure is returned by Save when the history file cannot be written.
	ErrWriteFailure = errors.New("cannot write history file")
)

// Store holds every scheduled message of one user. A Store only exists once
// Load has succeeded; its order carries no meaning.
type Store struct {
	entries []Entry
}

// Load reads the history document at path. A missing file is the "no history
// yet" state and yields an empty store. The parent directory is created when
// absent.
func Load(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Store{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptStore, path, err)
	}

	var entries *[]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptStore, path, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: %s: document is null, expected an array", ErrCorruptStore, path)
	}
	return &Store{entries: *entries}, nil
}

// Save overwrites the document at path with the store's current contents in
// the order they are held. The file is replaced atomically.
func (s *Store) Save(path string) error {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	return nil
}

// SaveWithRetention prunes entries older than the retention window and then
// saves. Entries loaded this run stay readable until this point.
func (s *Store) SaveWithRetention(path string, today Date, retentionDays int) error {
	s.PruneExpired(today, retentionDays)
	return s.Save(path)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "history-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
