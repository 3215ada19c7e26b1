package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/morning/internal/config"
	"github.com/Flyrell/morning/internal/editor"
	"github.com/Flyrell/morning/internal/history"
	"github.com/Flyrell/morning/internal/schedule"
	"github.com/spf13/cobra"
)

// loadSettings resolves the file layout and reads the configuration,
// writing the defaults on first run.
func loadSettings(cmd *cobra.Command) (config.Resolver, *config.Config, error) {
	r, err := config.NewResolver()
	if err != nil {
		return config.Resolver{}, nil, err
	}
	cfg, err := ensureConfig(cmd, r)
	return r, cfg, err
}

func ensureConfig(cmd *cobra.Command, r config.Resolver) (*config.Config, error) {
	cfg, created, err := config.Load(r)
	if err != nil {
		return nil, err
	}
	if !created {
		return cfg, nil
	}

	path := r.ConfigPath()
	if err := config.Write(path, cfg); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", Warning(fmt.Sprintf("could not save default config to %s: %s", path, err)))
		return cfg, nil
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", Silent("created default config at "+path))
	return cfg, nil
}

// messageProvider returns where new message text comes from: the --message
// flag, piped stdin, or the editor when attached to a terminal.
func messageProvider(cmd *cobra.Command, cfg *config.Config, message string) history.TextProvider {
	if message != "" {
		return func(string, bool) (string, error) {
			return editor.ReadMessage(strings.NewReader(message))
		}
	}
	if !stdinIsTerminal() {
		return func(string, bool) (string, error) {
			return editor.ReadMessage(cmd.InOrStdin())
		}
	}
	return editor.New(editor.Choose(cfg.Editor, os.Getenv)).EditMessage
}

// maxDays is the largest DAYS argument accepted, about a century.
const maxDays = 36600

// parseDays reads a non-negative day count argument.
func parseDays(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid DAYS value %q: expected a number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("DAYS must be 0 or positive")
	}
	if n > maxDays {
		return 0, fmt.Errorf("DAYS must be at most %d", maxDays)
	}
	return n, nil
}

// targetDate resolves the day a command acts on from either a DAYS argument
// counted forward from today, a --on date expression, or the fallback offset.
func targetDate(args []string, on string, fallback int, now time.Time) (history.Date, error) {
	today := history.DateOf(now)

	if on != "" {
		if len(args) > 0 {
			return history.Date{}, fmt.Errorf("specify either DAYS or --on, not both")
		}
		t, err := schedule.ParseDateFrom(on, now)
		if err != nil {
			return history.Date{}, err
		}
		day := history.DateOf(t)
		if err := day.Check(); err != nil {
			return history.Date{}, err
		}
		return day, nil
	}

	days := fallback
	if len(args) > 0 {
		n, err := parseDays(args[0])
		if err != nil {
			return history.Date{}, err
		}
		days = n
	}
	day := today.AddDays(days)
	if err := day.Check(); err != nil {
		return history.Date{}, err
	}
	return day, nil
}

// relativeDay describes d as seen from today.
func relativeDay(today, d history.Date) string {
	n := today.DaysUntil(d)
	switch {
	case n == 0:
		return "today"
	case n == 1:
		return "tomorrow"
	case n == -1:
		return "yesterday"
	case n > 1:
		return fmt.Sprintf("in %d days", n)
	}
	return fmt.Sprintf("%d days ago", -n)
}

// firstLine shortens a message to its first line for listings.
func firstLine(text string) string {
	line, rest, found := strings.Cut(text, "\n")
	if found && strings.TrimSpace(rest) != "" {
		return line + " ..."
	}
	return line
}
