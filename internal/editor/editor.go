package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultCommand is used when neither the config nor the environment names an editor.
const DefaultCommand = "nano"

// ErrEmptyMessage is returned when the edited message is blank.
var ErrEmptyMessage = errors.New("message is empty, nothing scheduled")

// Choose picks the editor command: the configured one, then $VISUAL, then
// $EDITOR, then nano.
func Choose(configured string, getenv func(string) string) string {
	if c := strings.TrimSpace(configured); c != "" {
		return c
	}
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
	}
	return DefaultCommand
}

// Editor runs an external text editor attached to the user's terminal.
type Editor struct {
	// Command may carry arguments, e.g. "code --wait".
	Command string
	// TempDir holds the scratch file for messages; empty means os.TempDir().
	TempDir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Editor wired to the process's standard streams.
func New(command string) Editor {
	return Editor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// EditMessage opens the editor on a scratch file pre-filled with prior when
// hasPrior is set, and returns the saved text with trailing whitespace removed.
func (e Editor) EditMessage(prior string, hasPrior bool) (string, error) {
	f, err := os.CreateTemp(e.TempDir, "morning-*.txt")
	if err != nil {
		return "", fmt.Errorf("creating scratch file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if hasPrior {
		if _, err := f.WriteString(prior); err != nil {
			f.Close()
			return "", fmt.Errorf("writing scratch file: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing scratch file: %w", err)
	}

	if err := e.run(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading scratch file: %w", err)
	}
	return cleanMessage(string(data))
}

// EditFile opens path directly, creating its directory first.
func (e Editor) EditFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return e.run(path)
}

func (e Editor) run(path string) error {
	fields := strings.Fields(e.Command)
	if len(fields) == 0 {
		fields = []string{DefaultCommand}
	}

	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor '%s' failed: %w", fields[0], err)
	}
	return nil
}

// ReadMessage reads a message from r, for when stdin is not a terminal.
func ReadMessage(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading message: %w", err)
	}
	return cleanMessage(string(data))
}

func cleanMessage(s string) (string, error) {
	s = strings.TrimRight(s, " \t\r\n")
	if strings.TrimSpace(s) == "" {
		return "", ErrEmptyMessage
	}
	return s, nil
}
