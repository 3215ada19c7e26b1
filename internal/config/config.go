package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultHistoryLength is the retention window, in days, of a fresh config.
const DefaultHistoryLength = 15

// MaxHistoryLength caps the retention window at about a century.
const MaxHistoryLength = 36600

// Config is the user's morning configuration, stored as JSON.
type Config struct {
	CommandFile   string `json:"command_file"`
	ReminderFile  string `json:"reminder_file"`
	HistoryFile   string `json:"history_file"`
	HistoryLength int    `json:"history_length"`
	Editor        string `json:"editor,omitempty"`
}

// CommandFilePath returns the shell script run every morning.
func (c *Config) CommandFilePath() string { return c.CommandFile }

// ReminderFilePath returns the file printed every morning.
func (c *Config) ReminderFilePath() string { return c.ReminderFile }

// HistoryFilePath returns the dated message document.
func (c *Config) HistoryFilePath() string { return c.HistoryFile }

// HistoryRetentionDays returns how many past days of messages are kept.
func (c *Config) HistoryRetentionDays() int { return c.HistoryLength }

// Validate checks the fields a hand-edited config could break.
func (c *Config) Validate() error {
	if c.HistoryLength < 0 {
		return fmt.Errorf("history_length must be 0 or positive, got %d", c.HistoryLength)
	}
	if c.HistoryLength > MaxHistoryLength {
		return fmt.Errorf("history_length must be at most %d, got %d", MaxHistoryLength, c.HistoryLength)
	}
	if c.HistoryFile == "" {
		return fmt.Errorf("history_file is required")
	}
	return nil
}

// Load reads the configuration for the resolved layout. When no config file
// exists yet, the layout defaults are returned with created set to true so
// the caller can persist them.
func Load(r Resolver) (cfg *Config, created bool, err error) {
	path := r.ConfigPath()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return r.Defaults(), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, false, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, false, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &c, false, nil
}

// Write stores cfg at path, creating the directory if needed.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
