package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "morning",
	Short: "Leave yourself a message for tomorrow morning",
	Long: `Leave yourself a message for tomorrow morning.

Run without a command to print your reminders, run your daily commands and
show the message scheduled for today.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return runShow(cmd, cfg, time.Now)
	},
}

func init() {
	rootCmd.SetHelpFunc(colorizedHelpFunc())
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(pastCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(reminderCmd)
	rootCmd.AddCommand(commandCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// Execute runs the command line and prints any error in the error style.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "%s\n", Error("error: "+err.Error()))
	}
	return err
}
