package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.25em 0.75em; }
ul { list-style: none; padding-left: 0; }
</style>
</head>
<body>
%s</body>
</html>
`

var converter = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts report markdown into a standalone printable page.
func HTML(markdown, title string) ([]byte, error) {
	var body bytes.Buffer
	if err := converter.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("failed to convert report: %w", err)
	}
	return []byte(fmt.Sprintf(pageTemplate, html.EscapeString(title), body.String())), nil
}
