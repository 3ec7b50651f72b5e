// Package dfs provides depth-first traversal over a core.Graph.
//
// Neighbor order follows core's sorted adjacency, so traversals are
// deterministic for a given graph. Edge weights are ignored.
package dfs

import (
	"errors"

	"github.com/go-graphflow/graphflow/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Preorder returns the vertices reachable from startID in depth-first
// preorder. Children are explored in sorted ID order.
// Complexity: O(V + E).
func Preorder(g *core.Graph, startID string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	order := make([]string, 0, g.VertexCount())
	seen := map[string]struct{}{startID: {}}
	stack := []string{startID}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)

		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		// Push in reverse so the smallest ID is popped first.
		for i := len(nbrs) - 1; i >= 0; i-- {
			v := nbrs[i]
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			stack = append(stack, v)
		}
	}

	return order, nil
}
