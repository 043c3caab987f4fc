package content

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in source text is omitted since goldmark runs without WithUnsafe.
var md = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))

// Markdown renders s as HTML. On a render failure the text is escaped instead.
func Markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}
