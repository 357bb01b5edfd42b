package server

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/code-review-checklists/checklint/pkg/errors"
)

// renderer converts checklist markdown to HTML. WithUnsafe keeps the
// raw <a name="..."> anchor tags intact in the output.
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		goldmarkhtml.WithUnsafe(),
	),
)

// renderPage renders the document body and wraps it in the preview
// page shell with the live-reload script.
func renderPage(title string, src []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := renderer.Convert(src, &body); err != nil {
		return nil, errors.WrapParse("markdown", "render", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	page.WriteString("<meta charset=\"utf-8\">\n")
	page.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	page.WriteString("<style>" + pageStyle + "</style>\n")
	page.WriteString("</head>\n<body>\n<main>\n")
	page.Write(body.Bytes())
	page.WriteString("\n</main>\n")
	page.WriteString("<script>" + reloadScript + "</script>\n")
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

const pageStyle = `
body { margin: 0; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; line-height: 1.6; color: #1f2328; }
main { max-width: 54rem; margin: 0 auto; padding: 2rem 1rem 4rem; }
code { background: #f6f8fa; padding: 0.1em 0.3em; border-radius: 4px; font-size: 0.9em; }
a { color: #0969da; }
h1, h2, h3 { line-height: 1.25; }
h2 { border-bottom: 1px solid #d1d9e0; padding-bottom: 0.3em; }
`

const reloadScript = `
(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "reload") {
      location.reload();
    }
  };
})();
`
