package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/Flyrell/morning/internal/config"
	"github.com/Flyrell/morning/internal/daily"
	"github.com/Flyrell/morning/internal/history"
	"github.com/spf13/cobra"
)

// runShow is the morning routine: reminders, daily commands, then today's
// message. History is saved back with expired entries pruned unless it could
// not be loaded, in which case the file is left untouched.
func runShow(cmd *cobra.Command, cfg *config.Config, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()

	showReminders(cmd, cfg.ReminderFilePath())
	showCommands(cmd, cfg.CommandFilePath())

	path := cfg.HistoryFilePath()
	store, err := history.Load(path)
	if err != nil {
		return err
	}

	today := history.Today(nowFn)
	_, _ = fmt.Fprintf(w, "%s\n", Section("Message"))
	if text, ok := store.FindByOffset(0, today); ok {
		_, _ = fmt.Fprintf(w, "%s\n", Text(text))
	} else {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("no message for today, leave one for tomorrow with 'morning next'"))
	}

	return store.SaveWithRetention(path, today, cfg.HistoryRetentionDays())
}

func showReminders(cmd *cobra.Command, path string) {
	text, err := daily.ReadReminders(path)
	if err != nil {
		warnFileError(cmd, "reminder", path, err)
		return
	}
	if text == "" {
		return
	}
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Section("Reminders"))
	_, _ = fmt.Fprintf(w, "%s\n\n", Text(text))
}

func showCommands(cmd *cobra.Command, path string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := &sectionWriter{w: cmd.OutOrStdout(), title: "Commands"}
	ran, err := daily.RunCommands(ctx, path, out, cmd.ErrOrStderr())
	if err != nil {
		warnFileError(cmd, "command", path, err)
	}
	if ran && out.started {
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}
}

func warnFileError(cmd *cobra.Command, kind, path string, err error) {
	msg := fmt.Sprintf("%s file %s: %s", kind, path, err)
	if errors.Is(err, fs.ErrPermission) {
		msg = fmt.Sprintf("%s file %s: permission denied", kind, path)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", Warning(msg))
}

// sectionWriter prints a section header before the first output it forwards.
type sectionWriter struct {
	w       io.Writer
	title   string
	started bool
}

func (s *sectionWriter) Write(p []byte) (int, error) {
	if !s.started {
		s.started = true
		if _, err := fmt.Fprintf(s.w, "%s\n", Section(s.title)); err != nil {
			return 0, err
		}
	}
	return s.w.Write(p)
}
