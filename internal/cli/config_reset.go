package cli

import (
	"fmt"

	"github.com/Flyrell/morning/internal/config"
	"github.com/spf13/cobra"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore the default configuration",
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := config.NewResolver()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runConfigReset(cmd, r, confirmFor(yes))
	},
}.Build()

// runConfigReset rewrites the config file with the layout defaults. Existing
// reminder, command and history files are not touched.
func runConfigReset(cmd *cobra.Command, r config.Resolver, confirm ConfirmFunc) error {
	path := r.ConfigPath()

	confirmed, err := confirm(fmt.Sprintf("Reset %s to defaults?", path))
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	if err := config.Write(path, r.Defaults()); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("configuration reset to defaults:"), Primary(path))
	return nil
}
