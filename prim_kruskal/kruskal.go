package prim_kruskal

import (
	"sort"

	"github.com/go-graphflow/graphflow/core"
)

// Kruskal computes the minimum spanning tree of an undirected, weighted graph
// using a disjoint-set with path compression and union by rank.
//
// Error conditions:
//   - ErrInvalidGraph : graph is nil, directed, or unweighted.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and no spanning tree exists.
//
// Steps:
//  1. Validate input.
//  2. Collect edges, skipping self-loops.
//  3. Stable-sort edges by ascending weight; ties keep Edge.ID order,
//     so equal-weight runs resolve deterministically.
//  4. Union-find sweep: include each edge joining two components, stop at
//     |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	allEdges := graph.Edges() // sorted by Edge.ID
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	dsu := NewDSU(vertices)

	var (
		mst         []core.Edge
		totalWeight float64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if dsu.Union(e.From, e.To) {
			mst = append(mst, *e)
			totalWeight += e.Weight
			if len(mst) == numVerts-1 {
				break
			}
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// DSU is a disjoint-set forest over string vertex IDs with path compression
// and union by rank. It backs Kruskal here and component grouping in the
// augmentation package.
type DSU struct {
	parent map[string]string
	rank   map[string]int
}

// NewDSU creates a DSU where every id is its own singleton set.
func NewDSU(ids []string) *DSU {
	d := &DSU{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.parent[id] = id
	}

	return d
}

// Add inserts id as a singleton set if not already present.
func (d *DSU) Add(id string) {
	if _, ok := d.parent[id]; !ok {
		d.parent[id] = id
	}
}

// Find returns the representative of id's set, compressing paths as it walks.
func (d *DSU) Find(id string) string {
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union merges the sets containing u and v.
// Reports whether a merge happened (false if already joined).
func (d *DSU) Union(u, v string) bool {
	rootU, rootV := d.Find(u), d.Find(v)
	if rootU == rootV {
		return false
	}
	if d.rank[rootU] < d.rank[rootV] {
		rootU, rootV = rootV, rootU
	}
	d.parent[rootV] = rootU
	if d.rank[rootU] == d.rank[rootV] {
		d.rank[rootU]++
	}

	return true
}
