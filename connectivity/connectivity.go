// Package connectivity provides flow based edge-connectivity algorithms
// over a core.Graph: local and global edge connectivity, k-edge-connectivity
// predicates, bridge finding, and maximal k-edge-connected subgraph
// decomposition.
//
// The flow based functions reduce each query to a maximum-flow computation
// on a unit-capacity auxiliary digraph. Callers running many queries against
// the same graph should build the auxiliary digraph once with
// AuxiliaryDigraph and pass it through Options.Auxiliary; the underlying
// residual network is reused the same way via Options.Flow.Residual.
package connectivity

import (
	"errors"
	"math"

	"github.com/go-graphflow/graphflow/bfs"
	"github.com/go-graphflow/graphflow/core"
	"github.com/go-graphflow/graphflow/flow"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrBadK is returned when a k-connectivity query receives k < 1.
	ErrBadK = errors.New("connectivity: k must be at least 1")

	// ErrDirectedUnsupported marks operations defined only on undirected
	// graphs.
	ErrDirectedUnsupported = errors.New("connectivity: operation requires an undirected graph")

	// ErrMultigraphUnsupported rejects multigraphs, which the flow layer
	// cannot represent.
	ErrMultigraphUnsupported = errors.New("connectivity: multigraphs are not supported")
)

// Options configures connectivity computations.
type Options struct {
	// Flow is passed through to the underlying max-flow solver. A nil
	// Flow.Func selects EdmondsKarp, which honors Flow.Cutoff and lets
	// global computations terminate early once the running minimum is
	// reached.
	Flow flow.Options

	// Auxiliary, if non-nil, is a prebuilt unit-capacity digraph from
	// AuxiliaryDigraph reused across calls instead of rebuilt.
	Auxiliary *core.Graph
}

// DefaultOptions returns Options with default flow settings.
func DefaultOptions() Options {
	return Options{Flow: flow.DefaultOptions()}
}

func (o *Options) normalize() {
	if o.Flow.Func == nil {
		o.Flow.Func = flow.EdmondsKarp
	}
}

// AuxiliaryDigraph builds the unit-capacity directed graph used for edge
// connectivity queries: one arc per directed edge of g, or a pair of
// reciprocal arcs per undirected edge, every arc with capacity 1. The
// maximum s-t flow on this digraph equals the local edge connectivity of
// s and t in g.
func AuxiliaryDigraph(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Multigraph() {
		return nil, ErrMultigraphUnsupported
	}

	aux := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, id := range g.Vertices() {
		if err := aux.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if !aux.HasEdge(e.From, e.To) {
			if _, err := aux.AddEdge(e.From, e.To, 1); err != nil {
				return nil, err
			}
		}
		if !g.Directed() && !aux.HasEdge(e.To, e.From) {
			if _, err := aux.AddEdge(e.To, e.From, 1); err != nil {
				return nil, err
			}
		}
	}

	return aux, nil
}

// LocalEdgeConnectivity returns the minimum number of edges that must be
// removed from g to disconnect t from s. Flow.Cutoff bounds the answer from
// above and lets the solver stop early.
func LocalEdgeConnectivity(g *core.Graph, s, t string, opts Options) (float64, error) {
	opts.normalize()
	aux := opts.Auxiliary
	if aux == nil {
		var err error
		if aux, err = AuxiliaryDigraph(g); err != nil {
			return 0, err
		}
	}

	return flow.MaximumFlowValue(aux, s, t, opts.Flow)
}

// EdgeConnectivity returns the global edge connectivity of g: the minimum
// number of edges whose removal disconnects the graph. Disconnected input
// (weakly connected, for digraphs) yields 0, as does a graph with fewer
// than two vertices.
//
// For undirected graphs the minimum over the n-1 local connectivities from
// a fixed vertex is taken; for directed graphs the minimum over the n local
// connectivities along a vertex cycle. Both walks share one auxiliary
// digraph and residual network, and shrink the cutoff as the running
// minimum drops.
func EdgeConnectivity(g *core.Graph, opts Options) (float64, error) {
	opts.normalize()
	if g == nil {
		return 0, ErrGraphNil
	}
	nodes := g.Vertices()
	if len(nodes) < 2 {
		return 0, nil
	}
	connected, err := bfs.IsConnected(g)
	if err != nil {
		return 0, err
	}
	if !connected {
		return 0, nil
	}

	// Edge connectivity never exceeds the minimum degree.
	bound := math.Inf(1)
	for _, id := range nodes {
		in, out, und, derr := g.Degree(id)
		if derr != nil {
			return 0, derr
		}
		if d := float64(in + out + und); d < bound {
			bound = d
		}
	}
	if opts.Flow.Cutoff > 0 && !math.IsInf(opts.Flow.Cutoff, 1) {
		bound = math.Min(bound, opts.Flow.Cutoff)
	}

	aux, err := AuxiliaryDigraph(g)
	if err != nil {
		return 0, err
	}
	r, err := flow.BuildResidualNetwork(aux, opts.Flow)
	if err != nil {
		return 0, err
	}
	opts.Flow.Residual = r

	probe := func(s, t string) error {
		opts.Flow.Cutoff = bound
		v, ferr := flow.MaximumFlowValue(aux, s, t, opts.Flow)
		if ferr != nil {
			return ferr
		}
		bound = math.Min(bound, v)
		return nil
	}

	if g.Directed() {
		for i := range nodes {
			if bound == 0 {
				break
			}
			if err := probe(nodes[i], nodes[(i+1)%len(nodes)]); err != nil {
				return 0, err
			}
		}
	} else {
		for _, w := range nodes[1:] {
			if bound == 0 {
				break
			}
			if err := probe(nodes[0], w); err != nil {
				return 0, err
			}
		}
	}

	return bound, nil
}

// IsKEdgeConnected reports whether the undirected graph g cannot be
// disconnected by removing fewer than k edges. Degree and node-count
// bounds short-circuit before any flow computation; k=1 reduces to
// connectivity and k=2 to bridge absence.
func IsKEdgeConnected(g *core.Graph, k int, opts Options) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, ErrDirectedUnsupported
	}
	if k < 1 {
		return false, ErrBadK
	}
	if g.VertexCount() < k+1 {
		return false, nil
	}
	for _, id := range g.Vertices() {
		_, _, und, err := g.Degree(id)
		if err != nil {
			return false, err
		}
		if und < k {
			return false, nil
		}
	}

	switch k {
	case 1:
		return bfs.IsConnected(g)
	case 2:
		has, err := HasBridges(g)
		return !has, err
	default:
		opts.Flow.Cutoff = float64(k)
		v, err := EdgeConnectivity(g, opts)
		if err != nil {
			return false, err
		}
		return v >= float64(k), nil
	}
}

// IsLocallyKEdgeConnected reports whether s and t cannot be disconnected
// by removing fewer than k edges from the undirected graph g.
func IsLocallyKEdgeConnected(g *core.Graph, s, t string, k int, opts Options) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, ErrDirectedUnsupported
	}
	if k < 1 {
		return false, ErrBadK
	}
	for _, id := range []string{s, t} {
		_, _, und, err := g.Degree(id)
		if err != nil {
			return false, err
		}
		if und < k {
			return false, nil
		}
	}

	if k == 1 {
		res, err := bfs.Traverse(g, s, bfs.DefaultOptions())
		if err != nil {
			return false, err
		}
		_, reached := res.Depth[t]
		return reached, nil
	}

	opts.Flow.Cutoff = float64(k)
	v, err := LocalEdgeConnectivity(g, s, t, opts)
	if err != nil {
		return false, err
	}

	return v >= float64(k), nil
}
