package bfs

import (
	"sort"

	"github.com/go-graphflow/graphflow/core"
)

// ConnectedComponents partitions the vertices of g into its (weakly)
// connected components. Each component slice is sorted, and components are
// ordered by their smallest member, so the output is deterministic.
// Edge direction is ignored.
// Complexity: O(V + E).
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// Undirected adjacency built once; core adjacency honors direction.
	adj := make(map[string][]string, g.VertexCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	seen := make(map[string]struct{}, g.VertexCount())
	var comps [][]string
	for _, root := range g.Vertices() {
		if _, ok := seen[root]; ok {
			continue
		}
		comp := []string{root}
		seen[root] = struct{}{}
		queue := []string{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if _, ok := seen[v]; ok {
					continue
				}
				seen[v] = struct{}{}
				comp = append(comp, v)
				queue = append(queue, v)
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsConnected reports whether g has at most one connected component.
// The empty graph counts as connected.
func IsConnected(g *core.Graph) (bool, error) {
	comps, err := ConnectedComponents(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}
