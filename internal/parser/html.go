package parser

import (
	"io"

	"github.com/dgallion1/pageflow/internal/content"
	"github.com/dgallion1/pageflow/internal/structure"
)

// HTMLParser handles saved HTML pages.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*content.Document, error) {
	page, err := structure.ParseHTML(r)
	if err != nil {
		return nil, err
	}

	doc := &content.Document{
		Title: stem(filename),
		Text:  structure.BlockText(page.Root),
		Items: structure.FromSelection(page.Root),
	}
	if page.Title != "" {
		doc.Title = page.Title
	}
	return doc, nil
}
