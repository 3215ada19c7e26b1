package cli

import (
	"fmt"

	"github.com/Flyrell/morning/internal/config"
	"github.com/spf13/cobra"
)

var configGetCmd = LeafCommand{
	Use:       "get [KEY]",
	Short:     "Show one configuration value, or all of them",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := config.NewResolver()
		if err != nil {
			return err
		}
		key := ""
		if len(args) > 0 {
			key = args[0]
		}
		return runConfigGet(cmd, r, key)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, r config.Resolver, key string) error {
	cfg, err := ensureConfig(cmd, r)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if key != "" {
		value, err := config.Get(cfg, key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\n", value)
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", Text("Configuration from"), Primary(r.ConfigPath()))
	for _, k := range config.Keys {
		value, _ := config.Get(cfg, k)
		if value == "" {
			value = Silent("(not set)")
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", Info(fmt.Sprintf("%-14s", k)), Text(value))
	}
	return nil
}
