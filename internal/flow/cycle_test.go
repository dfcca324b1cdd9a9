package flow

import "testing"

func chain(ids ...string) []Edge {
	var edges []Edge
	for i := 1; i < len(ids); i++ {
		edges = append(edges, newEdge(ids[i-1], ids[i], LabelFollows))
	}
	return edges
}

func TestWouldCreateCycle(t *testing.T) {
	edges := chain("a", "b", "c")
	tests := []struct {
		name           string
		source, target string
		want           bool
	}{
		{"back edge closes loop", "c", "a", true},
		{"self loop", "b", "b", true},
		{"forward shortcut", "a", "c", false},
		{"new node", "c", "d", false},
		{"unrelated pair", "x", "y", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WouldCreateCycle(edges, tt.source, tt.target); got != tt.want {
				t.Errorf("WouldCreateCycle(%s->%s) = %v, want %v", tt.source, tt.target, got, tt.want)
			}
		})
	}
}

func TestWouldCreateCycle_NoEdges(t *testing.T) {
	if WouldCreateCycle(nil, "a", "b") {
		t.Error("a single edge cannot form a cycle")
	}
}

// acyclic reports whether g contains no directed cycle (Kahn's algorithm).
func acyclic(g Graph) bool {
	adj := make(map[string][]string, len(g.Nodes))
	indeg := make(map[string]int, len(g.Nodes))
	nodes := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes[n.ID] = true
	}
	for _, e := range g.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		nodes[e.Source] = true
		nodes[e.Target] = true
		indeg[e.Target]++
	}

	var queue []string
	for id := range nodes {
		if indeg[id] == 0 {
			queue = append(queue, id)
		}
	}
	seen := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		seen++
		for _, next := range adj[id] {
			indeg[next]--
			if indeg[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	return seen == len(nodes)
}

func TestAcyclicHelper(t *testing.T) {
	g := NewGraph()
	g.Edges = chain("a", "b", "c")
	if !acyclic(g) {
		t.Error("expected chain to be acyclic")
	}
	g.Edges = append(g.Edges, newEdge("c", "a", LabelFollows))
	if acyclic(g) {
		t.Error("expected loop to be detected")
	}
}
