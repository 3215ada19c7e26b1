package cli

import (
	"fmt"

	"github.com/Flyrell/morning/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = LeafCommand{
	Use:       "set KEY VALUE",
	Short:     "Change a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := config.NewResolver()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, r, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, r config.Resolver, key, value string) error {
	cfg, err := ensureConfig(cmd, r)
	if err != nil {
		return err
	}

	if err := config.Set(cfg, key, value); err != nil {
		return err
	}
	if err := config.Write(r.ConfigPath(), cfg); err != nil {
		return err
	}

	stored, _ := config.Get(cfg, key)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text(fmt.Sprintf("%s set to", key)), Primary(stored))
	return nil
}
