// Package augment finds sets of edges that, once added to an undirected
// graph, make it k-edge-connected.
//
// KEdgeAugmentation dispatches on k: k=1 reduces to a spanning-tree problem
// over the component meta-graph and is optimal; k=2 uses the Eswaran-Tarjan
// construction (optimal when unconstrained, a 2/3-approximation via a
// minimum rooted branching when candidate edges are weighted); k>=3 falls
// back to a randomized greedy algorithm that guarantees feasibility but not
// minimality. When no full augmentation exists, Partial mode returns a best
// effort set that k-edge-connects every part of the graph that can be.
package augment

import (
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/go-graphflow/graphflow/connectivity"
	"github.com/go-graphflow/graphflow/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("augment: graph is nil")

	// ErrBadK is returned for k < 1.
	ErrBadK = errors.New("augment: k must be at least 1")

	// ErrInfeasible signals that no augmentation satisfying the request
	// exists with the available edges.
	ErrInfeasible = errors.New("augment: no feasible augmentation with the available edges")

	// ErrDirectedUnsupported marks the undirected-only contract.
	ErrDirectedUnsupported = errors.New("augment: operation requires an undirected graph")

	// ErrMultigraphUnsupported rejects multigraphs.
	ErrMultigraphUnsupported = errors.New("augment: multigraphs are not supported")
)

// Candidate is an edge that may be used in an augmentation, with the cost
// of adding it.
type Candidate struct {
	U, V   string
	Weight float64
}

// Options configures an augmentation run.
type Options struct {
	// Avail is the pool of candidate edges. nil means every edge in the
	// complement of the graph is available at unit weight; an empty non-nil
	// slice means no edges are available.
	Avail []Candidate

	// Partial converts an infeasible request into a best-effort result:
	// the returned edges k-edge-connect every part of the graph where that
	// is possible and maximally connect the remaining parts.
	Partial bool

	// Seed drives the randomized pruning pass of the greedy algorithm.
	Seed uint64

	// Connectivity is passed through to the k-edge-connectivity checks.
	Connectivity connectivity.Options

	// Logger receives debug events. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// DefaultOptions returns Options with default connectivity settings, no
// candidate restriction, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Connectivity: connectivity.DefaultOptions(),
		Logger:       zerolog.Nop(),
	}
}

// KEdgeAugmentation returns a set of edges that, added to g, make it
// impossible to disconnect g without removing at least k edges. The result
// is not guaranteed minimal for k >= 3 (the problem is NP-hard); see the
// package comment for the per-k guarantees.
//
// Errors: ErrBadK for k < 1; ErrInfeasible when no augmentation exists and
// Partial is unset; graph-shape errors for directed or multigraph input.
func KEdgeAugmentation(g *core.Graph, k int, opts Options) ([][2]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedUnsupported
	}
	if g.Multigraph() {
		return nil, ErrMultigraphUnsupported
	}
	if k < 1 {
		return nil, ErrBadK
	}

	edges, err := dispatch(g, k, opts)
	if err == nil || !errors.Is(err, ErrInfeasible) || !opts.Partial {
		return edges, err
	}

	// Best effort: if everything is available the complement is the
	// strongest possible augmentation, otherwise connect whatever the
	// candidates allow.
	if opts.Avail == nil {
		return ComplementEdges(g), nil
	}

	return PartialKEdgeAugmentation(g, k, opts)
}

func dispatch(g *core.Graph, k int, opts Options) ([][2]string, error) {
	if g.VertexCount() < k+1 {
		return nil, ErrInfeasible
	}
	if opts.Avail != nil && len(opts.Avail) == 0 {
		ok, err := connectivity.IsKEdgeConnected(g, k, opts.Connectivity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInfeasible
		}
		return nil, nil
	}

	switch k {
	case 1:
		return OneEdgeAugmentation(g, opts)
	case 2:
		return BridgeAugmentation(g, opts)
	default:
		return GreedyKEdgeAugmentation(g, k, opts)
	}
}

// ComplementEdges returns every vertex pair of the undirected graph g that
// is not already an edge, as ordered pairs in sorted order.
func ComplementEdges(g *core.Graph) [][2]string {
	nodes := g.Vertices()
	var out [][2]string
	for i, u := range nodes {
		for _, v := range nodes[i+1:] {
			if !g.HasEdge(u, v) {
				out = append(out, [2]string{u, v})
			}
		}
	}

	return out
}

// addEdgeCompat inserts an edge with the candidate weight, dropping the
// weight when the target graph is unweighted.
func addEdgeCompat(g *core.Graph, u, v string, w float64) (string, error) {
	if !g.Weighted() {
		w = 0
	}
	return g.AddEdge(u, v, w)
}

// orderedPair puts an undirected endpoint pair in lexicographic order.
func orderedPair(u, v string) [2]string {
	if u > v {
		u, v = v, u
	}
	return [2]string{u, v}
}

func sortPairs(pairs [][2]string) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
}

// unpackAvail normalizes the candidate pool against g: nil expands to the
// unit-weight complement, endpoints are ordered, self-loops and pairs
// already present in g are dropped, and duplicates keep the lightest
// weight. The result is sorted by (weight, u, v).
func unpackAvail(g *core.Graph, avail []Candidate) []Candidate {
	if avail == nil {
		comp := ComplementEdges(g)
		out := make([]Candidate, 0, len(comp))
		for _, p := range comp {
			out = append(out, Candidate{U: p[0], V: p[1], Weight: 1})
		}
		return out
	}

	best := make(map[[2]string]float64, len(avail))
	for _, c := range avail {
		if c.U == c.V || g.HasEdge(c.U, c.V) {
			continue
		}
		p := orderedPair(c.U, c.V)
		if w, ok := best[p]; !ok || c.Weight < w {
			best[p] = c.Weight
		}
	}

	out := make([]Candidate, 0, len(best))
	for p, w := range best {
		out = append(out, Candidate{U: p[0], V: p[1], Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
