package config

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides layout detection with a portable directory.
const HomeEnv = "MORNING_HOME"

const (
	portableConfig   = "morning.conf"
	portableCommand  = "command"
	portableReminder = "reminder.txt"
	portableHistory  = "history.json"

	installedDataDir = ".morning"
)

// installedDirs are the executable locations that mean a system install.
var installedDirs = []string{"/usr/bin", "/usr/local/bin"}

// Resolver decides where morning keeps its files. All ambient lookups happen
// in NewResolver; the methods only compute paths.
type Resolver struct {
	ExecDir string
	HomeDir string
	// Override is the MORNING_HOME value, if any.
	Override string
}

// NewResolver looks up the executable directory, the home directory and the
// MORNING_HOME override.
func NewResolver() (Resolver, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Resolver{}, err
	}

	execDir := ""
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		execDir = filepath.Dir(exe)
	}

	return Resolver{
		ExecDir:  execDir,
		HomeDir:  homeDir,
		Override: os.Getenv(HomeEnv),
	}, nil
}

// Portable reports whether files live next to the executable (or in
// MORNING_HOME) rather than in the user's home directory.
func (r Resolver) Portable() bool {
	if r.Override != "" {
		return true
	}
	if r.ExecDir == "" {
		return true
	}
	clean := filepath.Clean(r.ExecDir)
	for _, dir := range installedDirs {
		if clean == dir {
			return false
		}
	}
	return true
}

func (r Resolver) portableDir() string {
	if r.Override != "" {
		return r.Override
	}
	return r.ExecDir
}

// ConfigPath returns the location of the config file.
func (r Resolver) ConfigPath() string {
	if r.Portable() {
		return filepath.Join(r.portableDir(), portableConfig)
	}
	return filepath.Join(r.HomeDir, ".config", portableConfig)
}

// DataDir returns the directory holding the command, reminder and history files.
func (r Resolver) DataDir() string {
	if r.Portable() {
		return r.portableDir()
	}
	return filepath.Join(r.HomeDir, installedDataDir)
}

// Defaults returns a fresh config for this layout.
func (r Resolver) Defaults() *Config {
	dir := r.DataDir()
	return &Config{
		CommandFile:   filepath.Join(dir, portableCommand),
		ReminderFile:  filepath.Join(dir, portableReminder),
		HistoryFile:   filepath.Join(dir, portableHistory),
		HistoryLength: DefaultHistoryLength,
	}
}
