package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/morning/internal/config"
	"github.com/Flyrell/morning/internal/history"
	"github.com/Flyrell/morning/internal/schedule"
	"github.com/spf13/cobra"
)

var nextCmd = LeafCommand{
	Use:   "next [DAYS]",
	Short: "Schedule or revise the message for a future day",
	Long: `Schedule or revise the message shown DAYS from today (default 1).

The text comes from --message, from stdin when it is piped, or from your
editor. An existing message for the day is opened for revision.`,
	Args: cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "message", Shorthand: "m", Usage: "message text (skips the editor)"},
		{Name: "on", Usage: "date expression instead of DAYS (e.g. 'friday', 'in 3 days', '2025-03-12')"},
		{Name: "repeat", Usage: "write the same message on a recurring schedule (e.g. 'every monday', 'FREQ=WEEKLY;BYDAY=MO')"},
	},
	IntFlags: []IntFlag{
		{Name: "count", Usage: "number of occurrences for --repeat", Default: 4},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		message, _ := cmd.Flags().GetString("message")
		on, _ := cmd.Flags().GetString("on")
		repeat, _ := cmd.Flags().GetString("repeat")
		count, _ := cmd.Flags().GetInt("count")

		now := time.Now()
		start, err := targetDate(args, on, 1, now)
		if err != nil {
			return err
		}

		dates := []history.Date{start}
		if repeat != "" {
			var rule string
			dates, rule, err = recurringDates(repeat, start, count)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Silent(fmt.Sprintf("repeating %s, %d occurrences from %s", rule, len(dates), dates[0])))
		}

		return runNext(cmd, cfg, dates, messageProvider(cmd, cfg, message), time.Now)
	},
}.Build()

// recurringDates expands rule from start into at most count days and
// describes the rule for display.
func recurringDates(rule string, start history.Date, count int) ([]history.Date, string, error) {
	r, err := schedule.ParseRecurrence(rule)
	if err != nil {
		return nil, "", err
	}
	times, err := schedule.Occurrences(r, start.Time(), count)
	if err != nil {
		return nil, "", err
	}
	if len(times) == 0 {
		return nil, "", fmt.Errorf("recurrence '%s' has no occurrences from %s", rule, start)
	}
	dates := make([]history.Date, len(times))
	for i, t := range times {
		dates[i] = history.DateOf(t)
	}
	return dates, schedule.Describe(r), nil
}

// runNext writes one message to every date. The provider is asked once, with
// the message already stored for the first date as the starting text.
func runNext(cmd *cobra.Command, cfg *config.Config, dates []history.Date, provide history.TextProvider, nowFn func() time.Time) error {
	if len(dates) == 0 {
		return fmt.Errorf("no dates to schedule")
	}

	today := history.Today(nowFn)
	for _, d := range dates {
		if d.Before(today) {
			return fmt.Errorf("%s is in the past, use 'morning past' to read old messages", d)
		}
	}

	path := cfg.HistoryFilePath()
	store, err := history.Load(path)
	if err != nil {
		return err
	}

	existed := make([]bool, len(dates))
	for i, d := range dates {
		_, existed[i] = store.FindByDate(d)
	}

	if err := store.Upsert(dates[0], provide); err != nil {
		return err
	}
	text, _ := store.FindByDate(dates[0])
	for _, d := range dates[1:] {
		if err := store.Upsert(d, fixedMessage(text)); err != nil {
			return err
		}
	}

	if err := store.SaveWithRetention(path, today, cfg.HistoryRetentionDays()); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, d := range dates {
		verb := "scheduled"
		if existed[i] {
			verb = "updated"
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			Text(verb+" message for"), Primary(d.String()), Silent("("+relativeDay(today, d)+")"))
	}
	return nil
}

func fixedMessage(text string) history.TextProvider {
	return func(string, bool) (string, error) { return text, nil }
}
