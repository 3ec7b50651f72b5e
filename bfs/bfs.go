// Package bfs provides breadth-first traversal over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order, plus connected-component extraction built on the same walk.
//
// Edge weights are ignored; a weighted graph traverses exactly like its
// unweighted skeleton.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-graphflow/graphflow/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Options tunes a traversal. The zero value of each field is inert.
type Options struct {
	// Ctx allows cancellation and deadlines. Defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// OnVisit is called once per visited vertex with its depth.
	// Returning an error aborts the traversal.
	OnVisit func(id string, depth int) error

	// FilterNeighbor skips the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns Options with background context, no depth limit,
// no filtering, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Depth: vertex ID → distance (in edges) from the start.
//   - Parent: vertex ID → predecessor in the BFS tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

type queueItem struct {
	id    string
	depth int
}

// Traverse runs breadth-first search on g starting from startID.
// Neighbor order follows core's sorted NeighborIDs, so the visit order is
// deterministic for a given graph.
// Complexity: O(V + E).
func Traverse(g *core.Graph, startID string, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	queue := make([]queueItem, 0, n)
	queue = append(queue, queueItem{id: startID})
	res.Depth[startID] = 0

	for len(queue) > 0 {
		select {
		case <-opts.Ctx.Done():
			return nil, opts.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.id)
		if opts.OnVisit != nil {
			if err := opts.OnVisit(item.id, item.depth); err != nil {
				return nil, fmt.Errorf("bfs: visit hook at %q: %w", item.id, err)
			}
		}
		if opts.MaxDepth > 0 && item.depth == opts.MaxDepth {
			continue
		}

		nbrs, err := g.NeighborIDs(item.id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			if opts.FilterNeighbor != nil && !opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			res.Depth[nbr] = item.depth + 1
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}

	return res, nil
}
