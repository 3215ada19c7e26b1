package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverInstalledLayout(t *testing.T) {
	r := Resolver{ExecDir: "/usr/bin", HomeDir: "/home/alice"}

	assert.False(t, r.Portable())
	assert.Equal(t, "/home/alice/.config/morning.conf", r.ConfigPath())

	cfg := r.Defaults()
	assert.Equal(t, "/home/alice/.morning/command", cfg.CommandFilePath())
	assert.Equal(t, "/home/alice/.morning/reminder.txt", cfg.ReminderFilePath())
	assert.Equal(t, "/home/alice/.morning/history.json", cfg.HistoryFilePath())
	assert.Equal(t, 15, cfg.HistoryRetentionDays())
}

func TestResolverLocalBinIsInstalled(t *testing.T) {
	r := Resolver{ExecDir: "/usr/local/bin/", HomeDir: "/home/alice"}
	assert.False(t, r.Portable())
}

func TestResolverPortableLayout(t *testing.T) {
	r := Resolver{ExecDir: "/opt/tools/morning", HomeDir: "/home/alice"}

	assert.True(t, r.Portable())
	assert.Equal(t, "/opt/tools/morning/morning.conf", r.ConfigPath())

	cfg := r.Defaults()
	assert.Equal(t, "/opt/tools/morning/command", cfg.CommandFile)
	assert.Equal(t, "/opt/tools/morning/reminder.txt", cfg.ReminderFile)
	assert.Equal(t, "/opt/tools/morning/history.json", cfg.HistoryFile)
}

func TestResolverOverrideWins(t *testing.T) {
	r := Resolver{ExecDir: "/usr/bin", HomeDir: "/home/alice", Override: "/tmp/mh"}

	assert.True(t, r.Portable())
	assert.Equal(t, "/tmp/mh/morning.conf", r.ConfigPath())
	assert.Equal(t, "/tmp/mh/history.json", r.Defaults().HistoryFile)
}

func TestResolverUnknownExecDirIsPortable(t *testing.T) {
	r := Resolver{HomeDir: "/home/alice"}
	assert.True(t, r.Portable())
}

func TestLoadMissingConfigReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	r := Resolver{Override: dir}

	cfg, created, err := Load(r)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, r.Defaults(), cfg)
}

func TestWriteThenLoad(t *testing.T) {
	dir := t.TempDir()
	r := Resolver{Override: filepath.Join(dir, "nested")}
	cfg := r.Defaults()
	cfg.HistoryLength = 30
	cfg.Editor = "vim"

	require.NoError(t, Write(r.ConfigPath(), cfg))

	got, created, err := Load(r)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, cfg, got)
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	r := Resolver{Override: dir}
	require.NoError(t, os.WriteFile(r.ConfigPath(), []byte("{nope"), 0644))

	_, _, err := Load(r)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadRejectsNegativeHistoryLength(t *testing.T) {
	dir := t.TempDir()
	r := Resolver{Override: dir}
	content := `{"command_file":"c","reminder_file":"r","history_file":"h","history_length":-1}`
	require.NoError(t, os.WriteFile(r.ConfigPath(), []byte(content), 0644))

	_, _, err := Load(r)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "history_length")
}

func TestLoadRejectsHugeHistoryLength(t *testing.T) {
	dir := t.TempDir()
	r := Resolver{Override: dir}
	content := `{"command_file":"c","reminder_file":"r","history_file":"h","history_length":9223372036854775807}`
	require.NoError(t, os.WriteFile(r.ConfigPath(), []byte(content), 0644))

	_, _, err := Load(r)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at most 36600")
}

func TestLoadRejectsMissingHistoryFile(t *testing.T) {
	dir := t.TempDir()
	r := Resolver{Override: dir}
	require.NoError(t, os.WriteFile(r.ConfigPath(), []byte(`{"history_length":3}`), 0644))

	_, _, err := Load(r)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "history_file")
}

func TestGetAndSet(t *testing.T) {
	cfg := Resolver{Override: "/data"}.Defaults()

	require.NoError(t, Set(cfg, "history-length", "7"))
	v, err := Get(cfg, "history-length")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	require.NoError(t, Set(cfg, "editor", "  code --wait "))
	v, err = Get(cfg, "editor")
	require.NoError(t, err)
	assert.Equal(t, "code --wait", v)

	require.NoError(t, Set(cfg, "history-file", "/elsewhere/h.json"))
	assert.Equal(t, "/elsewhere/h.json", cfg.HistoryFilePath())

	require.NoError(t, Set(cfg, "reminder-file", "/elsewhere/r.txt"))
	assert.Equal(t, "/elsewhere/r.txt", cfg.ReminderFilePath())

	require.NoError(t, Set(cfg, "command-file", "/elsewhere/cmd"))
	assert.Equal(t, "/elsewhere/cmd", cfg.CommandFilePath())
}

func TestSetMakesPathsAbsolute(t *testing.T) {
	cfg := Resolver{Override: "/data"}.Defaults()

	require.NoError(t, Set(cfg, "history-file", "relative.json"))

	assert.True(t, filepath.IsAbs(cfg.HistoryFile))
}

func TestSetRejectsBadValues(t *testing.T) {
	cfg := Resolver{Override: "/data"}.Defaults()

	assert.Error(t, Set(cfg, "history-length", "abc"))
	assert.Error(t, Set(cfg, "history-length", "-2"))
	assert.Error(t, Set(cfg, "history-length", "9223372036854775807"))
	assert.Error(t, Set(cfg, "history-length", "36601"))
	assert.Equal(t, DefaultHistoryLength, cfg.HistoryLength)
	require.NoError(t, Set(cfg, "history-length", "36600"))
	assert.Equal(t, MaxHistoryLength, cfg.HistoryLength)
	assert.Error(t, Set(cfg, "history-file", "  "))

	err := Set(cfg, "colour", "blue")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key 'colour'")

	_, err = Get(cfg, "colour")
	assert.Error(t, err)
}
