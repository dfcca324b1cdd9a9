package structure

import "github.com/dgallion1/pageflow/internal/content"

// Prioritize bounds items to n while keeping every Title and Header.
//
// When the input fits it is returned unchanged. Otherwise the result is all
// headings in input order followed by the first n-len(headings)
// lists and paragraphs; headings are kept even when they alone exceed n.
func Prioritize(items []content.Item, n int) []content.Item {
	if len(items) <= n {
		return items
	}

	var headings, others []content.Item
	for _, it := range items {
		if _, _, ok := content.Heading(it); ok {
			headings = append(headings, it)
		} else {
			others = append(others, it)
		}
	}

	slots := max(0, n-len(headings))
	if slots < len(others) {
		others = others[:slots]
	}

	out := make([]content.Item, 0, len(headings)+len(others))
	out = append(out, headings...)
	return append(out, others...)
}
