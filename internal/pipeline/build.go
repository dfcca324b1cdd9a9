package pipeline

import (
	"github.com/dgallion1/pageflow/internal/content"
	"github.com/dgallion1/pageflow/internal/flow"
	"github.com/dgallion1/pageflow/internal/structure"
)

// Structure selects the item source for doc. Pre-segmented items win over
// text heuristics; the page title is put in front of them unless the items
// already open with a heading or with the title text itself.
func Structure(doc content.Document) []content.Item {
	if len(doc.Items) == 0 {
		return structure.FromText(doc.Text, doc.Title)
	}
	if doc.Title == "" {
		return doc.Items
	}
	first := doc.Items[0]
	if _, _, ok := content.Heading(first); ok || content.TextOf(first) == doc.Title {
		return doc.Items
	}
	items := make([]content.Item, 0, len(doc.Items)+1)
	items = append(items, content.Title{Text: doc.Title})
	return append(items, doc.Items...)
}

// Build runs the full structuring pipeline on doc and reports how many items
// the graph was assembled from. An empty document yields an empty graph; a
// title alone still yields its Title node.
func Build(doc content.Document) (flow.Graph, int) {
	if doc.Empty() {
		return flow.NewGraph(), 0
	}
	items := structure.Prioritize(Structure(doc), structure.MaxItems)
	return flow.Assemble(items), len(items)
}
