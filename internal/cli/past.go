package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/morning/internal/config"
	"github.com/Flyrell/morning/internal/history"
	"github.com/spf13/cobra"
)

var pastCmd = LeafCommand{
	Use:   "past [DAYS]",
	Short: "Show the message from DAYS ago (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		days := 1
		if len(args) > 0 {
			days, err = parseDays(args[0])
			if err != nil {
				return err
			}
		}

		return runPast(cmd, cfg, days, time.Now)
	},
}.Build()

func runPast(cmd *cobra.Command, cfg *config.Config, days int, nowFn func() time.Time) error {
	store, err := history.Load(cfg.HistoryFilePath())
	if err != nil {
		return err
	}

	today := history.Today(nowFn)
	day := today.AddDays(-days)
	w := cmd.OutOrStdout()

	text, ok := store.FindByOffset(-days, today)
	if !ok {
		_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("no message for %s (%s)", day, relativeDay(today, day))))
		if keep := cfg.HistoryRetentionDays(); days > keep {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", Warning(fmt.Sprintf("history only keeps the last %d days, see 'morning config set history-length'", keep)))
		}
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s\n", Section(fmt.Sprintf("%s (%s)", day, relativeDay(today, day))))
	_, _ = fmt.Fprintf(w, "%s\n", Text(text))
	return nil
}
