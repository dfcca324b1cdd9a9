package flow

import (
	"fmt"
	"strings"

	"github.com/dgallion1/pageflow/internal/content"
)

const (
	headingLabelRunes   = 40
	paragraphLabelRunes = 30
	ellipsis            = "..."
	listSeparator       = "\n• "
)

// assembler is the state carried through one forward pass over the items.
type assembler struct {
	graph          Graph
	seq            int
	lastID         string
	currentHeading string
	headingByLevel map[int]string
}

// Assemble builds the flowchart for items in a single pass.
//
// Every item becomes one node, in order. A heading at level L > 0 is linked
// from the latest heading at level L-1 when one exists. A list or paragraph
// is linked from the latest heading or, before any heading, from the
// previous node.
func Assemble(items []content.Item) Graph {
	a := &assembler{
		graph:          NewGraph(),
		headingByLevel: make(map[int]string),
	}
	for _, it := range items {
		a.add(it)
	}
	return a.graph
}

func (a *assembler) add(it content.Item) {
	a.seq++
	id := fmt.Sprintf("node-%d", a.seq)
	index := len(a.graph.Nodes)

	switch v := it.(type) {
	case content.Title:
		a.graph.Nodes = append(a.graph.Nodes, newNode(id, index, AccentA, truncate(v.Text, headingLabelRunes), v.Text))
		a.heading(id, 0)
	case content.Header:
		a.graph.Nodes = append(a.graph.Nodes, newNode(id, index, AccentB, truncate(v.Text, headingLabelRunes), v.Text))
		a.heading(id, v.Level)
	case content.List:
		label := fmt.Sprintf("List (%d items)", len(v.Items))
		a.graph.Nodes = append(a.graph.Nodes, newNode(id, index, AccentC, label, strings.Join(v.Items, listSeparator)))
		a.body(id, LabelList)
	case content.Paragraph:
		a.graph.Nodes = append(a.graph.Nodes, newNode(id, index, AccentB, truncate(v.Text, paragraphLabelRunes), v.Text))
		a.body(id, LabelContent)
	default:
		a.seq--
		return
	}
	a.lastID = id
}

func (a *assembler) heading(id string, level int) {
	a.headingByLevel[level] = id
	if level > 0 {
		if parent, ok := a.headingByLevel[level-1]; ok {
			a.link(parent, id, LabelContains)
		}
	}
	a.currentHeading = id
}

func (a *assembler) body(id string, label EdgeLabel) {
	switch {
	case a.currentHeading != "":
		a.link(a.currentHeading, id, label)
	case a.lastID != "":
		a.link(a.lastID, id, LabelFollows)
	}
}

func (a *assembler) link(source, target string, label EdgeLabel) {
	a.graph.Edges = append(a.graph.Edges, newEdge(source, target, label))
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + ellipsis
}
