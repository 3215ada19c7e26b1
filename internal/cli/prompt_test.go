package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysYes(t *testing.T) {
	confirm := AlwaysYes()

	ok, err := confirm("Remove the message for 2024-03-12?")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConfirmForYesFlag(t *testing.T) {
	ok, err := confirmFor(true)("anything?")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewConfirmFuncWithoutTerminal(t *testing.T) {
	if stdinIsTerminal() {
		t.Skip("stdin is a terminal")
	}

	ok, err := NewConfirmFunc()("Reset configuration?")

	assert.ErrorIs(t, err, ErrNotInteractive)
	assert.False(t, ok)
}
