// Package flow assembles content items into the node/edge graph rendered by
// the flowchart editor.
package flow

// NodeType is the visual accent of a node in the editor.
type NodeType string

const (
	AccentA NodeType = "typeA" // document title
	AccentB NodeType = "typeB" // headers and paragraphs
	AccentC NodeType = "typeC" // lists
)

// EdgeLabel is the relationship an edge expresses.
type EdgeLabel string

const (
	LabelContains EdgeLabel = "contains" // header to sub-header
	LabelContent  EdgeLabel = "content"  // header to paragraph
	LabelList     EdgeLabel = "list"     // header to list
	LabelFollows  EdgeLabel = "follows"  // sequential fallback

	// Labels of the sequential graph built by Sequential.
	LabelStart EdgeLabel = "start"
	LabelNext  EdgeLabel = "next"
	LabelEnd   EdgeLabel = "end"
)

const (
	rendererType = "custom"
	originX      = 250
	originY      = 100
	rowSpacing   = 150
)

// Position is an initial placement hint; the editor's layout step
// overwrites it.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HandleCounts is the number of connection handles per side.
type HandleCounts struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// NodeData is the payload the editor renders.
type NodeData struct {
	Label        string       `json:"label"`
	Description  string       `json:"description"`
	Type         NodeType     `json:"type"`
	HandleCounts HandleCounts `json:"handleCounts"`
	Flipped      bool         `json:"flipped"`
}

type Node struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

type EdgeData struct {
	Label EdgeLabel `json:"label"`
}

type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   string   `json:"type"`
	Data   EdgeData `json:"data"`
}

// Graph is the assembled flowchart. Nodes and Edges are never nil so the
// empty graph serialises as {"nodes":[],"edges":[]}.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NewGraph returns an empty graph.
func NewGraph() Graph {
	return Graph{Nodes: []Node{}, Edges: []Edge{}}
}

func newNode(id string, index int, typ NodeType, label, description string) Node {
	return Node{
		ID:   id,
		Type: rendererType,
		Position: Position{
			X: originX,
			Y: float64(originY + index*rowSpacing),
		},
		Data: NodeData{
			Label:        label,
			Description:  description,
			Type:         typ,
			HandleCounts: HandleCounts{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
	}
}

func newEdge(source, target string, label EdgeLabel) Edge {
	return Edge{
		ID:     EdgeID(source, target),
		Source: source,
		Target: target,
		Type:   rendererType,
		Data:   EdgeData{Label: label},
	}
}

// EdgeID is the id of the edge from source to target.
func EdgeID(source, target string) string {
	return "edge-" + source + "-" + target
}
