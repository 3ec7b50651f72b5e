package connectivity

import (
	"sort"

	"github.com/go-graphflow/graphflow/bfs"
	"github.com/go-graphflow/graphflow/core"
)

// orderedPair puts an undirected endpoint pair in lexicographic order so it
// can be used as a map key.
func orderedPair(u, v string) [2]string {
	if u > v {
		u, v = v, u
	}
	return [2]string{u, v}
}

// Bridges returns every bridge of the undirected graph g as ordered
// endpoint pairs, sorted. A bridge is an edge whose removal increases the
// number of connected components.
//
// Uses the classic single-pass depth-first low-point computation.
// Complexity: O(V + E).
func Bridges(g *core.Graph) ([][2]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedUnsupported
	}
	if g.Multigraph() {
		return nil, ErrMultigraphUnsupported
	}

	adj := make(map[string][]string, g.VertexCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	for _, nbrs := range adj {
		sort.Strings(nbrs)
	}

	disc := make(map[string]int, g.VertexCount())
	low := make(map[string]int, g.VertexCount())
	timer := 0
	var out [][2]string

	type frame struct {
		node, parent string
		next         int
	}

	for _, root := range g.Vertices() {
		if _, seen := disc[root]; seen {
			continue
		}
		disc[root] = timer
		low[root] = timer
		timer++
		stack := []frame{{node: root}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next < len(adj[f.node]) {
				nbr := adj[f.node][f.next]
				f.next++
				if nbr == f.parent {
					continue
				}
				if d, seen := disc[nbr]; seen {
					if d < low[f.node] {
						low[f.node] = d
					}
					continue
				}
				disc[nbr] = timer
				low[nbr] = timer
				timer++
				stack = append(stack, frame{node: nbr, parent: f.node})
				continue
			}
			stack = stack[:len(stack)-1]
			if f.parent == "" {
				continue
			}
			if low[f.node] < low[f.parent] {
				low[f.parent] = low[f.node]
			}
			if low[f.node] > disc[f.parent] {
				out = append(out, orderedPair(f.parent, f.node))
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out, nil
}

// HasBridges reports whether g contains at least one bridge.
func HasBridges(g *core.Graph) (bool, error) {
	bs, err := Bridges(g)
	if err != nil {
		return false, err
	}

	return len(bs) > 0, nil
}

// BridgeComponents returns the 2-edge-connected components of g: the
// connected components left after deleting every bridge. Components are
// sorted internally and ordered by smallest member.
func BridgeComponents(g *core.Graph) ([][]string, error) {
	bs, err := Bridges(g)
	if err != nil {
		return nil, err
	}
	cut := make(map[[2]string]struct{}, len(bs))
	for _, b := range bs {
		cut[b] = struct{}{}
	}

	h := g.Clone()
	h.FilterEdges(func(e *core.Edge) bool {
		_, isBridge := cut[orderedPair(e.From, e.To)]
		return !isBridge
	})

	return bfs.ConnectedComponents(h)
}
