package structure

import (
	"bytes"

	"github.com/dgallion1/pageflow/internal/content"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown extracts items from a Markdown source. ATX and setext
// headings become headers at their own level, top-level paragraphs become
// paragraphs and each list becomes one list item. Block quotes are read
// through; code blocks and thematic breaks are skipped.
func FromMarkdown(src []byte) []content.Item {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var items []content.Item
	var visit func(n ast.Node)
	visit = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch node := c.(type) {
			case *ast.Heading:
				if t := collapseSpace(inlineText(node, src)); t != "" {
					items = append(items, content.Header{Text: t, Level: node.Level})
				}
			case *ast.Paragraph:
				if t := collapseSpace(inlineText(node, src)); t != "" {
					items = append(items, content.Paragraph{Text: t})
				}
			case *ast.List:
				if entries := listEntries(node, src); len(entries) > 0 {
					items = append(items, content.List{Items: entries})
				}
			case *ast.Blockquote:
				visit(node)
			}
		}
	}
	visit(doc)
	return items
}

// listEntries returns the text of each entry of a list, ignoring any nested
// lists inside the entries.
func listEntries(list *ast.List, src []byte) []string {
	var entries []string
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var buf bytes.Buffer
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			switch c.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				if buf.Len() > 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(inlineText(c, src))
			}
		}
		if t := collapseSpace(buf.String()); t != "" {
			entries = append(entries, t)
		}
	}
	return entries
}

// inlineText concatenates the text of the inline children of a block.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					buf.WriteByte(' ')
				}
			case *ast.String:
				buf.Write(t.Value)
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return buf.String()
}
