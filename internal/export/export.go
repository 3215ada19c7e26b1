package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Flyrell/morning/internal/history"
)

// Formats lists the supported export formats.
var Formats = []string{"md", "html", "pdf"}

// ExportDay is one dated message.
type ExportDay struct {
	Date history.Date
	Text string
}

// ExportData holds the messages between two dates.
type ExportData struct {
	Title string
	From  history.Date
	To    history.Date
	Days  []ExportDay
}

// BuildExportData collects the store's messages between from and to
// (inclusive, zero bounds are open) sorted by date.
func BuildExportData(s *history.Store, from, to history.Date, title string) ExportData {
	data := ExportData{Title: title, From: from, To: to}
	for _, e := range s.Between(from, to) {
		data.Days = append(data.Days, ExportDay{Date: e.Date, Text: e.Text})
	}
	return data
}

// DayLabel formats a date like "Tuesday, March 12 2024".
func DayLabel(d history.Date) string {
	t := d.Time()
	return fmt.Sprintf("%s, %s %d %d", t.Weekday(), t.Month(), t.Day(), t.Year())
}

// RangeLabel describes the exported period.
func (d ExportData) RangeLabel() string {
	switch {
	case d.From.IsZero() && d.To.IsZero():
		return "All messages"
	case d.From.IsZero():
		return "Until " + d.To.String()
	case d.To.IsZero():
		return "From " + d.From.String()
	}
	return d.From.String() + " to " + d.To.String()
}

// RenderMarkdown renders the export as a markdown document. Message text is
// emitted as-is so any markdown it contains is preserved.
func RenderMarkdown(data ExportData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", data.Title)
	fmt.Fprintf(&b, "_%s_\n", data.RangeLabel())

	if len(data.Days) == 0 {
		b.WriteString("\nNo messages.\n")
		return b.String()
	}

	for _, day := range data.Days {
		fmt.Fprintf(&b, "\n## %s\n\n", DayLabel(day.Date))
		text := day.Text
		if strings.TrimSpace(text) == "" {
			text = "_(empty)_"
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Filename returns a default output name built from the title, such as
// "morning-messages-2024-03-09.pdf".
func Filename(format, title string, now time.Time) string {
	slug := strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		slug = "morning"
	}
	return fmt.Sprintf("%s-%s.%s", slug, now.Format("2006-01-02"), format)
}
