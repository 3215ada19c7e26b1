package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execCompletion(shell string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := newCompletionCmd()
	cmd.SetOut(stdout)
	err := runCompletion(cmd, shell)
	return stdout.String(), err
}

func TestCompletionShells(t *testing.T) {
	for _, shell := range validShells {
		t.Run(shell, func(t *testing.T) {
			stdout, err := execCompletion(shell)
			assert.NoError(t, err)
			assert.NotEmpty(t, stdout)
		})
	}
}

func TestCompletionInvalidShell(t *testing.T) {
	_, err := execCompletion("tcsh")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shell: tcsh")
}

func TestCompletionAutoDetect(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	stdout := new(bytes.Buffer)
	cmd := newCompletionCmd()
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.NotEmpty(t, stdout.String())
}

func TestDetectShell(t *testing.T) {
	assert.Equal(t, "bash", detectShell("/usr/bin/bash"))
	assert.Equal(t, "fish", detectShell("/opt/homebrew/bin/fish"))
	assert.Equal(t, "powershell", detectShell("/usr/local/bin/pwsh"))
	assert.Equal(t, "", detectShell("/bin/tcsh"))
	assert.Equal(t, "", detectShell(""))
}
