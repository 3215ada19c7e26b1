package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/morning/internal/config"
	"github.com/Flyrell/morning/internal/history"
	"github.com/spf13/cobra"
)

var cancelCmd = LeafCommand{
	Use:   "cancel [DAYS]",
	Short: "Remove the message scheduled DAYS from today (default 1)",
	Args:  cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "on", Usage: "date expression instead of DAYS (e.g. 'friday', '2025-03-12')"},
	},
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		on, _ := cmd.Flags().GetString("on")
		yes, _ := cmd.Flags().GetBool("yes")

		day, err := targetDate(args, on, 1, time.Now())
		if err != nil {
			return err
		}

		return runCancel(cmd, cfg, day, confirmFor(yes), time.Now)
	},
}.Build()

func runCancel(cmd *cobra.Command, cfg *config.Config, day history.Date, confirm ConfirmFunc, nowFn func() time.Time) error {
	path := cfg.HistoryFilePath()
	store, err := history.Load(path)
	if err != nil {
		return err
	}

	text, ok := store.FindByDate(day)
	if !ok {
		return fmt.Errorf("no message scheduled for %s", day)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Silent(firstLine(text)))

	confirmed, err := confirm(fmt.Sprintf("Remove the message for %s?", day))
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	store.Remove(day)
	if err := store.SaveWithRetention(path, history.Today(nowFn), cfg.HistoryRetentionDays()); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", Text("removed message for"), Primary(day.String()))
	return nil
}
