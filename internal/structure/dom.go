package structure

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/dgallion1/pageflow/internal/content"
	"golang.org/x/net/html"
)

const (
	// domParagraphMinRunes is the length a <p> must exceed to be kept.
	domParagraphMinRunes = 10
	// fallbackParagraphMinRunes applies when no tags yielded anything and
	// the flattened text is split into paragraphs instead.
	fallbackParagraphMinRunes = 30
)

const structuralSelector = "h1, h2, h3, h4, h5, h6, p, ul, ol"

// HTMLPage is a parsed HTML document reduced to its main content.
type HTMLPage struct {
	Title string
	Root  *goquery.Selection
}

// ParseHTML parses r, records the page title and narrows the document to its
// main content.
func ParseHTML(r io.Reader) (*HTMLPage, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)
	return &HTMLPage{
		Title: PageTitle(root),
		Root:  MainContent(doc),
	}, nil
}

// FromSelection extracts items from heading, paragraph and list tags in the
// order the selector query returns them. Nested lists are not merged: every
// <ul>/<ol> yields its own item. When no tag produced an item the flattened
// text is split into paragraphs as a fallback.
func FromSelection(sel *goquery.Selection) []content.Item {
	var items []content.Item
	sel.Find(structuralSelector).Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		switch tag {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if text := collapseSpace(s.Text()); text != "" {
				items = append(items, content.Header{Text: text, Level: int(tag[1] - '0')})
			}
		case "p":
			if text := collapseSpace(s.Text()); utf8.RuneCountInString(text) > domParagraphMinRunes {
				items = append(items, content.Paragraph{Text: text})
			}
		case "ul", "ol":
			var entries []string
			s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
				if text := collapseSpace(li.Text()); text != "" {
					entries = append(entries, text)
				}
			})
			if len(entries) > 0 {
				items = append(items, content.List{Items: entries})
			}
		}
	})

	if len(items) == 0 {
		return paragraphsOnly(BlockText(sel), fallbackParagraphMinRunes)
	}
	return items
}
