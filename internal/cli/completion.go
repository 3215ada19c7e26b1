package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var validShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = newCompletionCmd()

func newCompletionCmd() *cobra.Command {
	return LeafCommand{
		Use:   "completion [SHELL]",
		Short: "Generate a shell completion script",
		Long: `Generate a shell completion script for bash, zsh, fish or powershell.

Without SHELL the shell is taken from $SHELL. For example:

  morning completion bash > /etc/bash_completion.d/morning
  morning completion zsh > "${fpath[1]}/_morning"`,
		Args:      cobra.RangeArgs(0, 1),
		ValidArgs: validShells,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			} else {
				shell = detectShell(os.Getenv("SHELL"))
				if shell == "" {
					return fmt.Errorf("could not detect shell from $SHELL; please specify one explicitly (%s)", strings.Join(validShells, ", "))
				}
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
}

// detectShell maps a $SHELL path to a supported shell name.
func detectShell(shellPath string) string {
	switch base := filepath.Base(shellPath); base {
	case "bash", "zsh", "fish":
		return base
	case "pwsh", "powershell":
		return "powershell"
	}
	return ""
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: %s)", shell, strings.Join(validShells, ", "))
	}
}
