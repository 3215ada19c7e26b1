package cli

import (
	"strings"
	"testing"

	"github.com/Flyrell/morning/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execList(cfg *config.Config, all bool) (string, error) {
	stdout, _ := withOutput(listCmd)
	err := runList(listCmd, cfg, all, fixedNow)
	return stdout.String(), err
}

func seedMixedHistory(t *testing.T, cfg *config.Config) {
	seedHistory(t, cfg, `[
		{"date":"2024-03-15","text":"Friday plans\nwith details"},
		{"date":"2024-03-08","text":"Old news"},
		{"date":"2024-03-10","text":"Today"},
		{"date":"2024-03-11","text":"Tomorrow"}
	]`)
}

func TestListUpcomingSorted(t *testing.T) {
	cfg := testConfig(t)
	seedMixedHistory(t, cfg)

	out, err := execList(cfg, false)

	require.NoError(t, err)
	assert.NotContains(t, out, "Old news")
	assert.Contains(t, out, "Friday plans ...")
	assert.NotContains(t, out, "with details")
	assert.Contains(t, out, "in 5 days")
	assert.Less(t, strings.Index(out, "2024-03-10"), strings.Index(out, "2024-03-11"))
	assert.Less(t, strings.Index(out, "2024-03-11"), strings.Index(out, "2024-03-15"))
}

func TestListAllIncludesPast(t *testing.T) {
	cfg := testConfig(t)
	seedMixedHistory(t, cfg)

	out, err := execList(cfg, true)

	require.NoError(t, err)
	assert.Contains(t, out, "Old news")
	assert.Contains(t, out, "2 days ago")
	assert.Less(t, strings.Index(out, "2024-03-08"), strings.Index(out, "2024-03-10"))
}

func TestListEmpty(t *testing.T) {
	cfg := testConfig(t)

	out, err := execList(cfg, false)

	require.NoError(t, err)
	assert.Contains(t, out, "no messages scheduled")
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one", firstLine("one"))
	assert.Equal(t, "one ...", firstLine("one\ntwo"))
	assert.Equal(t, "one", firstLine("one\n"))
	assert.Equal(t, "", firstLine(""))
}
