package export

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 42rem; margin: 2rem auto; color: #222; }
h2 { border-bottom: 1px solid #ccc; padding-bottom: .2rem; font-size: 1.1rem; }
em { color: #777; }
</style>
</head>
<body>
`

const htmlFoot = `</body>
</html>
`

// RenderHTML renders the markdown export to a standalone HTML page. Raw HTML
// inside messages is escaped.
func RenderHTML(data ExportData) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify,
			extension.Strikethrough,
			extension.TaskList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(data)), &body); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, htmlHead, html.EscapeString(data.Title))
	out.Write(body.Bytes())
	out.WriteString(htmlFoot)
	return out.Bytes(), nil
}
