package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// DefaultExportName is the fixed base name of the exported document.
const DefaultExportName = "daftar-belanja.html"

// HTMLDocument converts a markdown report into a standalone HTML
// document ready to be written to disk. The markdown may carry raw img
// tags (the embedded profile photo), so unsafe rendering is enabled;
// every input comes from the local store, never from the network.
func HTMLDocument(markdown, title string, dark bool) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(ghtml.WithUnsafe()),
	)
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("could not render report: %w", err)
	}

	fg, bg := "#1e293b", "#ffffff"
	if dark {
		fg, bg = "#e2e8f0", "#0f172a"
	}

	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 48em; color: %s; background: %s; }
table { border-collapse: collapse; width: 100%%; }
th, td { border: 1px solid #94a3b8; padding: 0.4em 0.6em; }
tr:last-child td { font-weight: bold; }
</style>
</head>
<body>
`, title, fg, bg)
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.Bytes(), nil
}
