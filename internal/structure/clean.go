package structure

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// mainContentSelectors are tried in order; the first present element is
// taken as the page's main content.
var mainContentSelectors = []string{"article", "main", ".content", ".article", "body"}

const noiseSelector = "script, style, noscript, nav, header, footer, aside, iframe, form, .ads, .navigation, .menu, .sidebar"

// MainContent narrows doc to its main content element and strips
// navigation, scripts and other page furniture from it. The document is
// modified in place.
func MainContent(doc *goquery.Document) *goquery.Selection {
	root := doc.Selection
	for _, sel := range mainContentSelectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			root = found
			break
		}
	}
	root.Find(noiseSelector).Remove()
	return root
}

// PageTitle returns the text of the first <title> element.
func PageTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return collapseSpace(nodeText(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := PageTitle(c); t != "" {
			return t
		}
	}
	return ""
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "figcaption": true,
	"figure": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "hr": true, "li": true, "main": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "td": true,
	"th": true, "tr": true, "ul": true, "br": true,
}

var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// BlockText flattens a selection to text. Whitespace inside each block
// element is collapsed and blocks are separated by a blank line, so the
// result can be fed to FromText.
func BlockText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if skipTags[n.Data] {
				return
			}
			if blockTags[n.Data] {
				b.WriteString("\n\n")
				defer b.WriteString("\n\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}

	var blocks []string
	for _, block := range blankLines.Split(b.String(), -1) {
		if block = collapseSpace(block); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
