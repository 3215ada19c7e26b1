package daily

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Shell runs the command file.
const Shell = "bash"

// ReadReminders returns the contents of the reminder file. A missing file
// means there is nothing to remind and is not an error.
func ReadReminders(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// RunCommands executes the command file with bash, forwarding its output.
// It reports false without error when the file is missing or empty.
func RunCommands(ctx context.Context, path string, stdout, stderr io.Writer) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return false, nil
	}

	cmd := exec.CommandContext(ctx, Shell, path)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return true, fmt.Errorf("running %s: %w", path, err)
	}
	return true, nil
}
