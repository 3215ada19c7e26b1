package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Flyrell/morning/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStore(t *testing.T, content string) *history.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	s, err := history.Load(path)
	require.NoError(t, err)
	return s
}

func sampleData(t *testing.T) ExportData {
	s := loadStore(t, `[
		{"date":"2024-03-12","text":"**Dentist** at 9"},
		{"date":"2024-03-09","text":"Buy milk\nand bread"},
		{"date":"2024-04-01","text":"out of range"}
	]`)
	return BuildExportData(s,
		history.NewDate(2024, time.March, 1),
		history.NewDate(2024, time.March, 31),
		"Morning messages")
}

func TestBuildExportDataSortsAndFilters(t *testing.T) {
	data := sampleData(t)

	require.Len(t, data.Days, 2)
	assert.Equal(t, history.NewDate(2024, time.March, 9), data.Days[0].Date)
	assert.Equal(t, history.NewDate(2024, time.March, 12), data.Days[1].Date)
	assert.Equal(t, "2024-03-01 to 2024-03-31", data.RangeLabel())
}

func TestRangeLabelOpenBounds(t *testing.T) {
	d := history.NewDate(2024, time.March, 1)

	assert.Equal(t, "All messages", ExportData{}.RangeLabel())
	assert.Equal(t, "From 2024-03-01", ExportData{From: d}.RangeLabel())
	assert.Equal(t, "Until 2024-03-01", ExportData{To: d}.RangeLabel())
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Tuesday, March 12 2024", DayLabel(history.NewDate(2024, time.March, 12)))
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(sampleData(t))

	assert.Contains(t, md, "# Morning messages")
	assert.Contains(t, md, "## Saturday, March 9 2024")
	assert.Contains(t, md, "Buy milk\nand bread")
	assert.Contains(t, md, "**Dentist** at 9")
	assert.NotContains(t, md, "out of range")
	assert.Less(t, strings.Index(md, "March 9"), strings.Index(md, "March 12"))
}

func TestRenderMarkdownEmpty(t *testing.T) {
	md := RenderMarkdown(ExportData{Title: "Nothing"})
	assert.Contains(t, md, "No messages.")
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(sampleData(t))

	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, "<title>Morning messages</title>")
	assert.Contains(t, html, "<strong>Dentist</strong>")
	assert.Contains(t, html, "Saturday, March 9 2024</h2>")
}

func TestRenderHTMLEscapesRawHTML(t *testing.T) {
	s := loadStore(t, `[{"date":"2024-03-12","text":"<script>alert(1)</script>"}]`)
	data := BuildExportData(s, history.Date{}, history.Date{}, "x")

	out, err := RenderHTML(data)

	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestRenderPDFCreatesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "messages.pdf")

	require.NoError(t, RenderPDF(sampleData(t), outPath))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestRenderPDFEmpty(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "empty.pdf")

	require.NoError(t, RenderPDF(ExportData{Title: "Nothing"}, outPath))

	_, err := os.Stat(outPath)
	assert.NoError(t, err)
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "morning-messages-2024-03-09.pdf", Filename("pdf", "Morning messages", now))
	assert.Equal(t, "q1-review-2024-03-09.md", Filename("md", "  Q1: Review! ", now))
	assert.Equal(t, "morning-2024-03-09.html", Filename("html", "", now))
}
