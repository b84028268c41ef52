package core

// Connected reports whether every vertex is reachable from vertex 0,
// i.e. the graph forms a single component. An empty graph and a
// single-vertex graph are both connected.
//
// This is the precondition of the detour computation; callers that build
// graphs from already-validated molecules may skip it.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the queue.
func (g *Graph) Connected() bool {
	n := len(g.adjacency)
	if n <= 1 {
		return true
	}

	// BFS sweep from vertex 0.
	seen := make([]bool, n)
	queue := []int{0}
	seen[0] = true
	count := 1

	var u int
	var e Edge
	for qi := 0; qi < len(queue); qi++ {
		u = queue[qi]
		for _, e = range g.adjacency[u] {
			if !seen[e.To] {
				seen[e.To] = true
				count++
				queue = append(queue, e.To)
			}
		}
	}

	return count == n
}
