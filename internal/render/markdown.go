// Package render turns model output into HTML for the project detail view.
package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md leaves raw HTML in the source escaped; output comes from users and models.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
