package flow

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	sequentialMaxNodes = 10
	sequentialMinRunes = 20
)

var sequentialTypes = []NodeType{AccentA, AccentB, AccentC}

var newlineRuns = regexp.MustCompile(`\n+`)

// Sequential builds a plain chain from text: every line longer than 20
// characters becomes a node (at most 10), node types rotate through the
// three accents, and consecutive nodes are linked start, next..., end.
func Sequential(text string) Graph {
	var paragraphs []string
	for _, line := range newlineRuns.Split(text, -1) {
		if len(paragraphs) == sequentialMaxNodes {
			break
		}
		if utf8.RuneCountInString(strings.TrimSpace(line)) > sequentialMinRunes {
			paragraphs = append(paragraphs, line)
		}
	}

	g := NewGraph()
	for i, p := range paragraphs {
		id := fmt.Sprintf("node-%d", i+1)
		typ := sequentialTypes[i%len(sequentialTypes)]
		g.Nodes = append(g.Nodes, newNode(id, i, typ, truncate(p, paragraphLabelRunes), p))
	}
	for i := 1; i < len(g.Nodes); i++ {
		label := LabelNext
		switch {
		case i == 1:
			label = LabelStart
		case i == len(g.Nodes)-1:
			label = LabelEnd
		}
		edge := newEdge(g.Nodes[i-1].ID, g.Nodes[i].ID, label)
		edge.ID = fmt.Sprintf("edge-%d-%d", i, i+1)
		g.Edges = append(g.Edges, edge)
	}
	return g
}
