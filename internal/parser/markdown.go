package parser

import (
	"io"

	"github.com/dgallion1/pageflow/internal/content"
	"github.com/dgallion1/pageflow/internal/structure"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*content.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &content.Document{
		Title: stem(filename),
		Text:  string(src),
		Items: structure.FromMarkdown(src),
	}

	// A leading level-1 heading names the document.
	if len(doc.Items) > 0 {
		if h, ok := doc.Items[0].(content.Header); ok && h.Level == 1 {
			doc.Title = h.Text
		}
	}
	return doc, nil
}
