package flow

// WouldCreateCycle reports whether adding an edge from source to target to
// edges leaves a directed cycle reachable from source.
func WouldCreateCycle(edges []Edge, source, target string) bool {
	adj := make(map[string][]string, len(edges)+1)
	for _, e := range edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
	}
	adj[source] = append(adj[source], target)

	const (
		unvisited = iota
		onPath
		done
	)
	state := make(map[string]int)

	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case onPath:
			return true
		case done:
			return false
		}
		state[id] = onPath
		for _, next := range adj[id] {
			if visit(next) {
				return true
			}
		}
		state[id] = done
		return false
	}
	return visit(source)
}
