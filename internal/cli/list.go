package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/morning/internal/config"
	"github.com/Flyrell/morning/internal/history"
	"github.com/spf13/cobra"
)

var listCmd = LeafCommand{
	Use:   "list",
	Short: "List scheduled messages",
	BoolFlags: []BoolFlag{
		{Name: "all", Shorthand: "a", Usage: "include past messages still kept in history"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")
		return runList(cmd, cfg, all, time.Now)
	},
}.Build()

func runList(cmd *cobra.Command, cfg *config.Config, all bool, nowFn func() time.Time) error {
	store, err := history.Load(cfg.HistoryFilePath())
	if err != nil {
		return err
	}

	today := history.Today(nowFn)
	from := today
	if all {
		from = history.Date{}
	}

	w := cmd.OutOrStdout()
	entries := store.Between(from, history.Date{})
	if len(entries) == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("no messages scheduled"))
		return nil
	}

	for _, e := range entries {
		when := fmt.Sprintf("%-12s", relativeDay(today, e.Date))
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Primary(e.Date.String()), Silent(when), Text(firstLine(e.Text)))
	}
	return nil
}
