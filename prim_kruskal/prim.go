package prim_kruskal

import (
	"container/heap"

	"github.com/go-graphflow/graphflow/core"
)

// Prim computes the minimum spanning tree of an undirected, weighted graph
// by growing outward from root using a min-heap of frontier edges.
//
// Error conditions:
//   - ErrInvalidGraph       : graph is nil, directed, or unweighted.
//   - ErrEmptyRoot          : root is the empty string.
//   - core.ErrVertexNotFound: root does not exist in the graph.
//   - ErrDisconnected       : |V| == 0, or the graph is not fully connected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	// pushFrontier adds every edge leaving u toward an unvisited vertex.
	pushFrontier := func(u string) error {
		neighbors, err := graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			// Undirected edges may be stored with u as either endpoint.
			other := e.To
			if other == u {
				other = e.From
			}
			if !visited[other] {
				heap.Push(pq, frontierEdge{edge: e, to: other})
			}
		}
		return nil
	}

	visited[root] = true
	if err := pushFrontier(root); err != nil {
		return nil, 0, err
	}

	for pq.Len() > 0 && len(mst) < n-1 {
		fe := heap.Pop(pq).(frontierEdge)
		if visited[fe.to] {
			continue // stale entry, would form a cycle
		}
		visited[fe.to] = true
		mst = append(mst, *fe.edge)
		totalWeight += fe.edge.Weight

		if err := pushFrontier(fe.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// frontierEdge pairs a candidate edge with the unvisited endpoint it reaches.
type frontierEdge struct {
	edge *core.Edge
	to   string
}

// edgePQ is a min-heap of frontier edges ordered by weight.
type edgePQ []frontierEdge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].edge.Weight < pq[j].edge.Weight }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	fe := old[n-1]
	*pq = old[:n-1]

	return fe
}
