package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Flyrell/morning/internal/config"
	"github.com/Flyrell/morning/internal/export"
	"github.com/Flyrell/morning/internal/history"
	"github.com/Flyrell/morning/internal/schedule"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	Format string
	Output string
	From   string
	To     string
	Title  string
}

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export messages to markdown, HTML or PDF",
	StrFlags: []StringFlag{
		{Name: "format", Shorthand: "f", Usage: "export format (md, html, pdf)", Default: "md"},
		{Name: "output", Shorthand: "o", Usage: "output file (default <title>-<today>.<format>)"},
		{Name: "from", Usage: "first day to include (date expression)"},
		{Name: "to", Usage: "last day to include (date expression)"},
		{Name: "title", Usage: "document title", Default: "Morning messages"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		var opts exportOptions
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.Output, _ = cmd.Flags().GetString("output")
		opts.From, _ = cmd.Flags().GetString("from")
		opts.To, _ = cmd.Flags().GetString("to")
		opts.Title, _ = cmd.Flags().GetString("title")

		return runExport(cmd, cfg, opts, time.Now)
	},
}.Build()

func runExport(cmd *cobra.Command, cfg *config.Config, opts exportOptions, nowFn func() time.Time) error {
	format := strings.ToLower(opts.Format)
	if !slices.Contains(export.Formats, format) {
		return fmt.Errorf("unsupported export format %q (supported: %s)", opts.Format, strings.Join(export.Formats, ", "))
	}

	now := nowFn()
	from, err := exportBound(opts.From, now)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	to, err := exportBound(opts.To, now)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return fmt.Errorf("--to %s is before --from %s", to, from)
	}

	store, err := history.Load(cfg.HistoryFilePath())
	if err != nil {
		return err
	}

	data := export.BuildExportData(store, from, to, opts.Title)
	if len(data.Days) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Silent("no messages to export ("+strings.ToLower(data.RangeLabel())+")"))
		return nil
	}

	outputPath := opts.Output
	if outputPath == "" {
		outputPath = export.Filename(format, opts.Title, now)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}

	switch format {
	case "md":
		err = os.WriteFile(outputPath, []byte(export.RenderMarkdown(data)), 0644)
	case "html":
		var page []byte
		page, err = export.RenderHTML(data)
		if err == nil {
			err = os.WriteFile(outputPath, page, 0644)
		}
	case "pdf":
		err = export.RenderPDF(data, outputPath)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		Text(fmt.Sprintf("exported %d messages to", len(data.Days))), Primary(outputPath))
	return nil
}

func exportBound(expr string, now time.Time) (history.Date, error) {
	if expr == "" {
		return history.Date{}, nil
	}
	t, err := schedule.ParseDateFrom(expr, now)
	if err != nil {
		return history.Date{}, err
	}
	return history.DateOf(t), nil
}
