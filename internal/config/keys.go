package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Keys lists the settable configuration keys in display order.
var Keys = []string{"history-length", "editor", "command-file", "reminder-file", "history-file"}

// Get returns the value of key as text.
func Get(cfg *Config, key string) (string, error) {
	switch key {
	case "history-length":
		return strconv.Itoa(cfg.HistoryLength), nil
	case "editor":
		return cfg.Editor, nil
	case "command-file":
		return cfg.CommandFile, nil
	case "reminder-file":
		return cfg.ReminderFile, nil
	case "history-file":
		return cfg.HistoryFile, nil
	}
	return "", unknownKey(key)
}

// Set parses value and assigns it to key. File paths are made absolute.
func Set(cfg *Config, key, value string) error {
	switch key {
	case "history-length":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid history-length %q: expected a number of days", value)
		}
		if n < 0 {
			return fmt.Errorf("history-length must be 0 or positive")
		}
		if n > MaxHistoryLength {
			return fmt.Errorf("history-length must be at most %d", MaxHistoryLength)
		}
		cfg.HistoryLength = n
		return nil
	case "editor":
		cfg.Editor = strings.TrimSpace(value)
		return nil
	case "command-file", "reminder-file", "history-file":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
		abs, err := filepath.Abs(value)
		if err != nil {
			return err
		}
		switch key {
		case "command-file":
			cfg.CommandFile = abs
		case "reminder-file":
			cfg.ReminderFile = abs
		default:
			cfg.HistoryFile = abs
		}
		return nil
	}
	return unknownKey(key)
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key '%s' (valid: %s)", key, strings.Join(Keys, ", "))
}
