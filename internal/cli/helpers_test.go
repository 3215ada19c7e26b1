package cli

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flyrell/morning/internal/config"
	"github.com/Flyrell/morning/internal/history"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// fixedNow is Sunday 2024-03-10, 08:30 UTC.
func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.Resolver{Override: t.TempDir()}.Defaults()
}

func seedHistory(t *testing.T, cfg *config.Config, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.HistoryFilePath()), 0755))
	require.NoError(t, os.WriteFile(cfg.HistoryFilePath(), []byte(content), 0644))
}

func loadHistory(t *testing.T, cfg *config.Config) *history.Store {
	t.Helper()
	s, err := history.Load(cfg.HistoryFilePath())
	require.NoError(t, err)
	return s
}

func withOutput(cmd *cobra.Command) (stdout, stderr *bytes.Buffer) {
	stdout = new(bytes.Buffer)
	stderr = new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return stdout, stderr
}

func requireBash(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
}

func date(y int, m time.Month, d int) history.Date {
	return history.NewDate(y, m, d)
}
