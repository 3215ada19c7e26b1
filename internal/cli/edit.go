package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/morning/internal/config"
	"github.com/Flyrell/morning/internal/editor"
	"github.com/spf13/cobra"
)

// FileEditor opens a file for editing.
type FileEditor func(path string) error

var reminderCmd = LeafCommand{
	Use:   "reminder",
	Short: "Edit the reminders printed every morning",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if err := requireTerminal("reminder", cfg.ReminderFilePath()); err != nil {
			return err
		}
		return runEditFile(cmd, "reminder", cfg.ReminderFilePath(), newFileEditor(cfg))
	},
}.Build()

var commandCmd = LeafCommand{
	Use:   "command",
	Short: "Edit the shell commands run every morning",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if err := requireTerminal("command", cfg.CommandFilePath()); err != nil {
			return err
		}
		return runEditFile(cmd, "command", cfg.CommandFilePath(), newFileEditor(cfg))
	},
}.Build()

func newFileEditor(cfg *config.Config) FileEditor {
	return editor.New(editor.Choose(cfg.Editor, os.Getenv)).EditFile
}

func requireTerminal(kind, path string) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("editing the %s file needs a terminal, edit %s directly", kind, path)
	}
	return nil
}

func runEditFile(cmd *cobra.Command, kind, path string, edit FileEditor) error {
	if err := edit(path); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text(kind+" file saved:"), Silent(path))
	return nil
}
